package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		dx    float64
		width float64
		want  Intent
	}{
		{"at rest", 0, 400, IntentNone},
		{"short right", 60, 400, IntentNone},
		{"short left", -99, 400, IntentNone},
		{"exactly on threshold right", 100, 400, IntentNone},
		{"exactly on threshold left", -100, 400, IntentNone},
		{"just past threshold right", 100.01, 400, IntentCommitRight},
		{"long right", 150, 400, IntentCommitRight},
		{"long left", -150, 400, IntentCommitLeft},
		{"wide viewport", 150, 1024, IntentNone},
		{"zero width", 1, 0, IntentCommitRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.dx, tt.width))
		})
	}
}

func TestClassifyWithRatio(t *testing.T) {
	assert.Equal(t, IntentNone, ClassifyWithRatio(150, 400, 0.5))
	assert.Equal(t, IntentCommitLeft, ClassifyWithRatio(-250, 400, 0.5))
}

func TestIntentString(t *testing.T) {
	assert.Equal(t, "none", IntentNone.String())
	assert.Equal(t, "commit-right", IntentCommitRight.String())
	assert.Equal(t, "commit-left", IntentCommitLeft.String())
}
