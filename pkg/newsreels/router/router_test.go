package router

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRouter_RequiresTransition(t *testing.T) {
	err := New(quiet()).Run(context.Background(), 0, nil)
	require.Error(t, err)
}

func TestRouter_UnregisteredScreen(t *testing.T) {
	r := New(quiet()).OnTransition(func(Screen, any, *Stack) (Screen, any) { return ScreenExit, nil })
	err := r.Run(context.Background(), 7, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "screen(7)")
}

func TestRouter_ScreenErrorIsWrapped(t *testing.T) {
	boom := errors.New("boom")
	r := New(quiet()).
		Register(0, "reels", func(context.Context, any) (any, error) { return nil, boom }).
		OnTransition(func(Screen, any, *Stack) (Screen, any) { return ScreenExit, nil })

	err := r.Run(context.Background(), 0, nil)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "reels")
}

func TestRouter_StopsOnContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	r := New(quiet()).
		Register(0, "loop", func(context.Context, any) (any, error) {
			calls++
			if calls == 3 {
				cancel()
			}
			return nil, nil
		}).
		OnTransition(func(Screen, any, *Stack) (Screen, any) { return 0, nil })

	err := r.Run(ctx, 0, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, calls)
}

func TestStack(t *testing.T) {
	s := NewStack()
	assert.True(t, s.IsEmpty())
	assert.Nil(t, s.Pop())
	assert.Nil(t, s.Peek())

	s.Push(1, "a", 10)
	s.Push(2, "b", nil)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, Screen(2), s.Peek().Screen)

	top := s.Pop()
	require.NotNil(t, top)
	assert.Equal(t, "b", top.Input)
	assert.Equal(t, 10, s.Pop().Resume)

	s.Push(3, nil, nil)
	s.Clear()
	assert.True(t, s.IsEmpty())
}

func TestParseRoute(t *testing.T) {
	r, err := ParseRoute("/spor/42")
	require.NoError(t, err)
	assert.Equal(t, Route{Category: "spor", ID: "42"}, r)

	r, err = ParseRoute(Route{Category: "iş dünyası", ID: "a/b"}.Path())
	require.NoError(t, err)
	assert.Equal(t, Route{Category: "iş dünyası", ID: "a/b"}, r)

	for _, bad := range []string{"", "/", "/spor", "/spor/42/extra", "//42"} {
		_, err := ParseRoute(bad)
		assert.Error(t, err, bad)
	}
}

func TestNavigator(t *testing.T) {
	var n Navigator

	_, ok := n.Take()
	assert.False(t, ok)

	n.Navigate("spor", "1")
	n.Navigate("dunya", "2")

	r, ok := n.Pending()
	require.True(t, ok)
	assert.Equal(t, Route{Category: "dunya", ID: "2"}, r)

	r, ok = n.Take()
	require.True(t, ok)
	assert.Equal(t, "/dunya/2", r.Path())

	_, ok = n.Pending()
	assert.False(t, ok)
}
