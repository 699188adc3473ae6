package scraper

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const menuFragment = `
<div class="menu-wrap">
  <ul class="menu-column">
    <li><a href="/cat/phones/" title="Phones">Phones</a></li>
    <li><a href="/cat/laptops/" title="Laptops">Laptops</a></li>
    <li><a href="/cat/hidden/">No title</a></li>
  </ul>
</div>`

func TestParseMenuSlugs(t *testing.T) {
	slugs, err := parseMenuSlugs(menuFragment)
	require.NoError(t, err)
	require.Equal(t, []string{"phones", "laptops"}, slugs)
}

func TestParseMenuSlugsMissingFragment(t *testing.T) {
	_, err := parseMenuSlugs("")
	require.ErrorIs(t, err, ErrNoMenuFragment)

	_, err = parseMenuSlugs("   \n ")
	require.ErrorIs(t, err, ErrNoMenuFragment)
}

func TestParseMenuSlugsMissingColumn(t *testing.T) {
	_, err := parseMenuSlugs(`<div class="menu-wrap"><a href="/cat/phones/" title="Phones">Phones</a></div>`)
	require.ErrorIs(t, err, ErrNoMenuColumn)
}

func TestCategorySlugs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/menu/", r.URL.Path)
		require.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"MenuTpl":{"Desktop":"<ul class=\"menu-column\"><li><a href=\"/cat/phones/\" title=\"Phones\">Phones</a></li></ul>"}}`))
	}))
	defer srv.Close()

	client := NewClient(Options{
		BaseURL:   srv.URL,
		Timeout:   time.Second,
		UserAgent: "test-agent",
	})

	slugs, err := client.CategorySlugs()
	require.NoError(t, err)
	require.Equal(t, []string{"phones"}, slugs)
}

func TestCategorySlugsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL, Timeout: time.Second, UserAgent: "test-agent"})

	_, err := client.CategorySlugs()
	require.Error(t, err)
}
