package commands

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsai/newsreels/pkg/newsreels/config"
)

func withConfig(t *testing.T, c config.Config) {
	t.Helper()
	prev := cfg
	cfg = c
	t.Cleanup(func() { cfg = prev })
}

func TestListCmd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/news/category/spor", r.URL.Path)
		_, _ = io.WriteString(w, `[
			{"id": 42, "title": "Derbi", "category": "spor", "image": "/uploads/d.jpg"},
			{"id": 43, "title": "Transfer", "category": "spor"}
		]`)
	}))
	defer srv.Close()

	c := config.Default()
	c.APIBaseURL = srv.URL
	withConfig(t, c)

	var out bytes.Buffer
	cmd := listCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--category", "spor"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))

	got := out.String()
	assert.Contains(t, got, "ROUTE")
	assert.Contains(t, got, "/spor/42")
	assert.Contains(t, got, srv.URL+"/uploads/d.jpg")
	assert.Contains(t, got, "/spor/43")
	assert.Contains(t, got, "assets/default-images/spor.jpg")
}

func TestListCmd_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := config.Default()
	c.APIBaseURL = srv.URL
	withConfig(t, c)

	cmd := listCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{})

	assert.Error(t, cmd.ExecuteContext(context.Background()))
}
