package deck

import (
	"context"
)

// Item is a news article as shown on a card. Items are read-only once loaded.
type Item struct {
	ID       string
	Category string
	Title    string
	Spot     string
	Summary  string
	Content  string
	Image    string
}

// Source supplies the items of a deck. It is read once when the deck mounts.
type Source interface {
	FetchItems(ctx context.Context) ([]Item, error)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(ctx context.Context) ([]Item, error)

func (f SourceFunc) FetchItems(ctx context.Context) ([]Item, error) {
	return f(ctx)
}

// StaticSource serves a fixed list of items.
type StaticSource []Item

func (s StaticSource) FetchItems(context.Context) ([]Item, error) {
	items := make([]Item, len(s))
	copy(items, s)
	return items, nil
}

// Navigator receives the item a card was dismissed toward "open".
// Calls are fire-and-forget.
type Navigator interface {
	Navigate(category, id string)
}

// NavigatorFunc adapts a plain function to Navigator.
type NavigatorFunc func(category, id string)

func (f NavigatorFunc) Navigate(category, id string) {
	f(category, id)
}
