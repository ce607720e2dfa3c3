package newsreels

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadingMinutes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 1},
		{"short", "Bir iki üç", 1},
		{"exactly one minute", strings.Repeat("kelime ", 200), 1},
		{"just over", strings.Repeat("kelime ", 201), 2},
		{"long", strings.Repeat("word ", 1000), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, readingMinutes(tt.text))
		})
	}
}

func TestClampScroll(t *testing.T) {
	assert.Equal(t, int32(0), clampScroll(-20, 100))
	assert.Equal(t, int32(100), clampScroll(140, 100))
	assert.Equal(t, int32(40), clampScroll(40, 100))
	assert.Equal(t, int32(0), clampScroll(40, 0))
}

func TestInfrastructureError(t *testing.T) {
	err := NewInfrastructureError("init_sdl", assert.AnError)

	assert.True(t, IsInfrastructureError(err))
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, "newsreels: init_sdl: "+assert.AnError.Error(), err.Error())
	assert.False(t, IsCancelled(err))
	assert.True(t, IsCancelled(ErrCancelled))
}
