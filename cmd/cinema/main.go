package main // Entry point package

import (
	"context"
	"io"
	stdlog "log"
	"os"

	"github.com/joho/godotenv"

	"github.com/iliyamo/cinema-room-manager/internal/app"
	"github.com/iliyamo/cinema-room-manager/internal/config"
	"github.com/iliyamo/cinema-room-manager/internal/logger"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdlog.Printf("ignoring .env: %v", err)
	}
	cfg := config.Load() // Load environment config

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		os.Exit(1)
	}
}

// run builds the logger and runs one session.  A failing session is logged
// before the log file is closed, whatever LOG_LEVEL says.
func run(cfg config.Config, in io.Reader, out io.Writer) error {
	l, closer, err := logger.New(cfg)
	if err != nil {
		stdlog.Print(err)
		return err
	}
	defer closer.Close()

	if err := app.Run(context.Background(), cfg, in, out, l); err != nil {
		l.Printf("cinema: %v", err)
		return err
	}
	return nil
}
