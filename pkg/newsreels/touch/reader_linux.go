//go:build linux

package touch

import (
	"fmt"
	"log/slog"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// Reader streams pointer events from an evdev touch panel.
type Reader struct {
	dev    *evdev.InputDevice
	events chan Event
	done   chan struct{}
	closed *atomic.Bool
	asm    assembler
	logger *slog.Logger
}

// Open starts reading the panel at path, scaling to a width x height window.
func Open(path string, width, height float64, logger *slog.Logger) (*Reader, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open touch device %s: %w", path, err)
	}

	infos, err := dev.AbsInfos()
	if err != nil {
		dev.Close()
		return nil, fmt.Errorf("read axes of %s: %w", path, err)
	}

	r := &Reader{
		dev:    dev,
		events: make(chan Event, 64),
		done:   make(chan struct{}),
		closed: atomic.NewBool(false),
		logger: logger,
		asm: assembler{
			x:      axisFor(infos, evdev.ABS_MT_POSITION_X, evdev.ABS_X),
			y:      axisFor(infos, evdev.ABS_MT_POSITION_Y, evdev.ABS_Y),
			width:  width,
			height: height,
		},
	}

	name, _ := dev.Name()
	logger.Debug("Touch panel opened", "path", path, "name", name, "x", r.asm.x, "y", r.asm.y)

	go r.run()
	return r, nil
}

func axisFor(infos map[evdev.EvCode]evdev.AbsInfo, codes ...evdev.EvCode) Axis {
	for _, code := range codes {
		if info, ok := infos[code]; ok && info.Maximum > info.Minimum {
			return Axis{Min: info.Minimum, Max: info.Maximum}
		}
	}
	return Axis{}
}

// Events delivers pointer events. Drain it from the render loop.
func (r *Reader) Events() <-chan Event {
	return r.events
}

func (r *Reader) run() {
	defer close(r.events)

	for {
		ev, err := r.dev.ReadOne()
		if err != nil {
			if !r.closed.Load() {
				r.logger.Error("Touch panel read failed", "error", err)
			}
			return
		}

		switch ev.Type {
		case evdev.EV_ABS:
			switch ev.Code {
			case evdev.ABS_X, evdev.ABS_MT_POSITION_X:
				r.asm.setX(ev.Value)
			case evdev.ABS_Y, evdev.ABS_MT_POSITION_Y:
				r.asm.setY(ev.Value)
			}
		case evdev.EV_KEY:
			if ev.Code == evdev.BTN_TOUCH {
				r.asm.setTouch(ev.Value != 0)
			}
		case evdev.EV_SYN:
			out, ok := r.asm.sync()
			if !ok {
				continue
			}
			select {
			case r.events <- out:
			default:
				// Render loop is behind; moves are dropped, edges are not.
				if out.Kind == Move {
					continue
				}
				select {
				case r.events <- out:
				case <-r.done:
					return
				}
			}
		}
	}
}

// Close stops the reader and releases the device.
func (r *Reader) Close() error {
	if r.closed.Swap(true) {
		return nil
	}
	close(r.done)
	return r.dev.Close()
}
