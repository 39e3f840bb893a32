// Package console reads the integer tokens the booking session runs on.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrNotInteger is returned when the next token is not a whole number.
var ErrNotInteger = errors.New("input is not an integer")

// Reader splits its input on whitespace and hands out one integer at a time.
type Reader struct {
	sc *bufio.Scanner
}

func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &Reader{sc: sc}
}

// NextInt blocks until the next token is available.  It returns io.EOF once
// the input is exhausted.
func (r *Reader) NextInt() (int, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return 0, fmt.Errorf("read input: %w", err)
		}
		return 0, io.EOF
	}
	tok := r.sc.Text()
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotInteger, tok)
	}
	return n, nil
}
