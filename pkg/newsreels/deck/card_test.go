package deck

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/newsai/newsreels/pkg/newsreels/constants"
)

func TestImageResolver_Candidates(t *testing.T) {
	r := ImageResolver{BaseURL: "http://localhost:8080/", AssetsDir: "/opt/reels"}

	tests := []struct {
		name     string
		image    string
		category string
		want     []string
	}{
		{
			name:     "absolute url",
			image:    "https://cdn.example.com/a.jpg",
			category: "spor",
			want:     []string{"https://cdn.example.com/a.jpg", "/opt/reels/default-images/spor.jpg", constants.PlaceholderImage},
		},
		{
			name:     "api upload",
			image:    "/uploads/b.png",
			category: "Ekonomi",
			want:     []string{"http://localhost:8080/uploads/b.png", "/opt/reels/default-images/ekonomi.jpg", constants.PlaceholderImage},
		},
		{
			name:     "no image",
			category: "guncel",
			want:     []string{"/opt/reels/default-images/sondakika.jpg", constants.PlaceholderImage},
		},
		{
			name:     "unknown category and relative image",
			image:    "c.jpg",
			category: "magazin",
			want:     []string{constants.PlaceholderImage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Candidates(tt.image, tt.category))
			assert.Equal(t, tt.want[0], r.Resolve(tt.image, tt.category))
		})
	}
}

func TestImageResolver_CustomCategories(t *testing.T) {
	r := ImageResolver{CategoryImages: map[string]string{"magazin": "m.jpg"}}
	assert.Equal(t, []string{"m.jpg", constants.PlaceholderImage}, r.Candidates("", "MAGAZIN"))
	assert.Equal(t, []string{constants.PlaceholderImage}, r.Candidates("", "spor"))
}

func TestBlurb(t *testing.T) {
	long := strings.Repeat("ğ", 130)

	assert.Equal(t, "spot", Blurb(Item{Spot: "spot", Summary: "sum", Content: "body"}, 120))
	assert.Equal(t, "sum", Blurb(Item{Summary: "sum", Content: "body"}, 120))
	assert.Equal(t, "body...", Blurb(Item{Content: "body"}, 120))
	assert.Equal(t, strings.Repeat("ğ", 120)+"...", Blurb(Item{Content: long}, 120))
	assert.Equal(t, "", Blurb(Item{}, 120))
}
