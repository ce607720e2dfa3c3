package router

import (
	"context"
	"fmt"
	"log/slog"
)

// Screen is a type-safe identifier for screens.
// Applications define their own Screen constants using iota.
type Screen int

// ScreenFunc runs a screen until it produces a result.
// The input and result types are screen-specific.
type ScreenFunc func(ctx context.Context, input any) (result any, err error)

// TransitionFunc is called after each screen completes to pick the next one.
// It receives the screen that just completed, its result, and the back stack.
//
// Return (ScreenExit, nil) to leave the router.
type TransitionFunc func(from Screen, result any, stack *Stack) (next Screen, input any)

// ScreenExit is a special Screen value that signals the router to exit.
const ScreenExit Screen = -1

// Router runs registered screens one after another. A single transition
// function decides every hop.
type Router struct {
	screens    map[Screen]ScreenFunc
	names      map[Screen]string
	transition TransitionFunc
	stack      *Stack
	logger     *slog.Logger
}

// New creates a Router that logs transitions to logger (slog.Default when nil).
func New(logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		screens: make(map[Screen]ScreenFunc),
		names:   make(map[Screen]string),
		stack:   NewStack(),
		logger:  logger,
	}
}

// Register adds a screen under a display name used in logs.
func (r *Router) Register(screen Screen, name string, fn ScreenFunc) *Router {
	r.screens[screen] = fn
	r.names[screen] = name
	return r
}

// OnTransition sets the transition function.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

func (r *Router) name(screen Screen) string {
	if n, ok := r.names[screen]; ok {
		return n
	}
	return fmt.Sprintf("screen(%d)", screen)
}

// Run starts at the given screen and keeps going until the transition
// function returns ScreenExit, a screen fails, or ctx is done.
func (r *Router) Run(ctx context.Context, start Screen, input any) error {
	if r.transition == nil {
		return fmt.Errorf("router: no transition function set")
	}

	current := start
	currentInput := input

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fn, ok := r.screens[current]
		if !ok {
			return fmt.Errorf("router: %s not registered", r.name(current))
		}

		result, err := fn(ctx, currentInput)
		if err != nil {
			return fmt.Errorf("router: %s: %w", r.name(current), err)
		}

		next, nextInput := r.transition(current, result, r.stack)
		if next == ScreenExit {
			r.logger.Debug("Router exiting", "from", r.name(current))
			return nil
		}

		r.logger.Debug("Router transition", "from", r.name(current), "to", r.name(next), "depth", r.stack.Len())
		current = next
		currentInput = nextInput
	}
}

// Stack returns the back stack.
func (r *Router) Stack() *Stack {
	return r.stack
}
