package deck

import "math"

// SwipeTriggerRatio is the share of the viewport width a release has to
// cover before it commits.
const SwipeTriggerRatio = 0.25

// Intent is the classified outcome of a released drag.
type Intent int

const (
	IntentNone Intent = iota
	IntentCommitRight
	IntentCommitLeft
)

func (i Intent) String() string {
	switch i {
	case IntentCommitRight:
		return "commit-right"
	case IntentCommitLeft:
		return "commit-left"
	default:
		return "none"
	}
}

// Classify maps a release displacement to an Intent using the default
// trigger ratio.
func Classify(dx, viewportWidth float64) Intent {
	return ClassifyWithRatio(dx, viewportWidth, SwipeTriggerRatio)
}

// ClassifyWithRatio is Classify with a custom trigger ratio.
func ClassifyWithRatio(dx, viewportWidth, ratio float64) Intent {
	if math.Abs(dx) <= viewportWidth*ratio {
		return IntentNone
	}
	if dx > 0 {
		return IntentCommitRight
	}
	return IntentCommitLeft
}
