package deck

import (
	"path/filepath"
	"strings"

	"github.com/newsai/newsreels/pkg/newsreels/constants"
)

// Card is everything a renderer needs to draw the active item.
type Card struct {
	Item Item
	// ImageRefs lists image candidates in preference order. The last entry is
	// always constants.PlaceholderImage.
	ImageRefs []string
	Title     string
	Blurb     string
	Drag      DragState
}

// ImageResolver builds the image fallback chain for an item.
type ImageResolver struct {
	// BaseURL is prepended to API-relative upload paths.
	BaseURL string
	// AssetsDir is prepended to category default images.
	AssetsDir string
	// CategoryImages overrides constants.CategoryImages when set.
	CategoryImages map[string]string
}

// Candidates returns the image chain for an image reference and category:
// the item's own image, the category default, then the placeholder.
func (r ImageResolver) Candidates(image, category string) []string {
	refs := make([]string, 0, 3)

	switch {
	case strings.HasPrefix(image, "http://"), strings.HasPrefix(image, "https://"):
		refs = append(refs, image)
	case strings.HasPrefix(image, constants.UploadsPrefix):
		refs = append(refs, strings.TrimRight(r.BaseURL, "/")+image)
	}

	images := r.CategoryImages
	if images == nil {
		images = constants.CategoryImages
	}
	if def, ok := images[strings.ToLower(category)]; ok {
		if r.AssetsDir != "" {
			def = filepath.Join(r.AssetsDir, def)
		}
		refs = append(refs, def)
	}

	return append(refs, constants.PlaceholderImage)
}

// Resolve returns the preferred image for an image reference and category.
func (r ImageResolver) Resolve(image, category string) string {
	return r.Candidates(image, category)[0]
}

// Blurb picks the short text under a card title: the spot, then the summary,
// then the start of the body.
func Blurb(item Item, maxRunes int) string {
	if item.Spot != "" {
		return item.Spot
	}
	if item.Summary != "" {
		return item.Summary
	}
	if item.Content == "" {
		return ""
	}
	runes := []rune(item.Content)
	if len(runes) > maxRunes {
		runes = runes[:maxRunes]
	}
	return string(runes) + "..."
}
