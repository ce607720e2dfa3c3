package source_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsai/newsreels/pkg/newsreels/deck"
	"github.com/newsai/newsreels/pkg/newsreels/source"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serve(t *testing.T, wantPath string, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != wantPath {
			t.Errorf("expected %s, got %s", wantPath, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_FetchItems(t *testing.T) {
	srv := serve(t, "/api/news", http.StatusOK, `[
		{"id": 42, "title": "Derbi", "category": "spor", "spot": "Son dakika", "image": "/uploads/d.jpg", "status": "published"},
		{"id": "43", "title": "Faiz", "category": "ekonomi", "summary": "Kısa", "image": null, "imageUrl": "https://cdn/x.jpg"},
		{"id": 44, "title": "Taslak", "category": "genel", "status": "draft"},
		{"title": "Kimliksiz", "category": "genel"}
	]`)

	c := source.NewClient(srv.Client(), srv.URL+"/", "", quietLogger())
	items, err := c.FetchItems(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []deck.Item{
		{ID: "42", Category: "spor", Title: "Derbi", Spot: "Son dakika", Image: "/uploads/d.jpg"},
		{ID: "43", Category: "ekonomi", Title: "Faiz", Summary: "Kısa", Image: "https://cdn/x.jpg"},
	}, items)
	assert.Equal(t, srv.URL, c.BaseURL())
}

func TestClient_FetchItems_Category(t *testing.T) {
	srv := serve(t, "/api/news/category/spor", http.StatusOK, `[{"id": 1, "title": "Gol", "category": "spor"}]`)

	c := source.NewClient(srv.Client(), srv.URL, "spor", quietLogger())
	items, err := c.FetchItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ID)
}

func TestClient_FetchItems_UpstreamError(t *testing.T) {
	srv := serve(t, "/api/news", http.StatusInternalServerError, `boom`)

	c := source.NewClient(srv.Client(), srv.URL, "", quietLogger())
	_, err := c.FetchItems(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, source.ErrUpstream)
	assert.Contains(t, err.Error(), "500")
}

func TestClient_FetchItems_BadJSON(t *testing.T) {
	srv := serve(t, "/api/news", http.StatusOK, `{"not": "a list"}`)

	c := source.NewClient(srv.Client(), srv.URL, "", quietLogger())
	_, err := c.FetchItems(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestClient_FetchItem(t *testing.T) {
	srv := serve(t, "/api/news/7", http.StatusOK, `{"id": 7, "title": "Tek", "category": "dunya", "content": "Gövde"}`)

	c := source.NewClient(srv.Client(), srv.URL, "", quietLogger())
	item, err := c.FetchItem(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, deck.Item{ID: "7", Category: "dunya", Title: "Tek", Content: "Gövde"}, item)
}

func TestClient_DegradesToEmptyDeck(t *testing.T) {
	srv := serve(t, "/api/news", http.StatusBadGateway, ``)

	c := source.NewClient(srv.Client(), srv.URL, "", quietLogger())
	ctrl := deck.NewController(nil, deck.WithLogger(quietLogger()))
	ctrl.Load(context.Background(), c)

	assert.True(t, ctrl.Empty())
}
