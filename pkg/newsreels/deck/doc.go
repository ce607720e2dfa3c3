// Package deck implements the swipeable card deck behind the reels screen.
//
// The package has no rendering dependencies. A host feeds it pointer events
// and calls Tick once per frame; the deck answers with the card to draw and
// the live drag transform to apply to it.
//
// # Gesture cycle
//
//	PointerDown -> PointerMove* -> PointerUp -> Classify -> MoveTo -> Tick* -> settle
//
// A release is classified against a quarter of the viewport width. A short
// drag springs back to rest. A long drag to the right flies the card off and
// advances to the next item (wrapping at the end). A long drag to the left
// flies the card off and hands the item to the Navigator.
//
// The outcome of a release is decided once, when the card is let go, and
// travels with the animation until it settles. Grabbing the card again before
// it settles discards that outcome.
package deck
