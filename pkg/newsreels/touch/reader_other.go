//go:build !linux

package touch

import (
	"errors"
	"log/slog"
)

// ErrUnsupported is returned by Open on platforms without evdev.
var ErrUnsupported = errors.New("touch: evdev is only available on linux")

type Reader struct{}

func Open(string, float64, float64, *slog.Logger) (*Reader, error) {
	return nil, ErrUnsupported
}

func (r *Reader) Events() <-chan Event {
	return nil
}

func (r *Reader) Close() error {
	return nil
}
