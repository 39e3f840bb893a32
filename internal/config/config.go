package config // package config loads application configuration from environment variables

import (
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
    "strings" // strings normalizes level names
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable; every variable is optional and falls back to a
// default so the simulator starts with an empty environment.
type Config struct {
    Env            string // application environment (e.g. "dev", "prod")
    LogLevel       string // debug | info | warn | error | off
    LogFile        string // optional file that receives a copy of the logs
    FrontPrice     int    // price of a front-half seat, and of every seat in a small room
    BackPrice      int    // price of a back-half seat
    SmallRoomLimit int    // rooms with at most this many seats use flat pricing
}

// Load reads configuration values from environment variables and returns a
// Config.  Unset or malformed values fall back to their defaults.
func Load() Config {
    return Config{
        Env:            envStr("APP_ENV", "dev"),
        LogLevel:       strings.ToLower(envStr("LOG_LEVEL", "warn")),
        LogFile:        os.Getenv("LOG_FILE"),
        FrontPrice:     envInt("TICKET_PRICE_FRONT", 10),
        BackPrice:      envInt("TICKET_PRICE_BACK", 8),
        SmallRoomLimit: envInt("SMALL_ROOM_SEAT_LIMIT", 60),
    }
}

func envStr(k, d string) string { if v := os.Getenv(k); v != "" { return v }; return d }
func envInt(k string, d int) int {
    v := os.Getenv(k); if v == "" { return d }
    if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil { return n }
    return d
}
