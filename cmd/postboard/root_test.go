package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"postboard/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	mu      sync.Mutex
	queries []string
	fail    bool
}

func (a *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	a.queries = append(a.queries, r.URL.RequestURI())
	a.mu.Unlock()
	if a.fail {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case "/posts":
		fmt.Fprint(w, `[{"userId":1,"id":1,"title":"Alpha","body":"first body"},{"userId":2,"id":2,"title":"Beta","body":"second"}]`)
	case "/users":
		fmt.Fprint(w, `[{"id":1,"name":"Leanne Graham","username":"Bret","email":"l@example.com","phone":"1-770-736-8031 x56442","website":"example.org"}]`)
	default:
		http.NotFound(w, r)
	}
}

// isolate points every side effect of a command run at temp locations.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("POSTBOARD_LOG_FILE", filepath.Join(t.TempDir(), "postboard.log"))
	t.Setenv("POSTBOARD_CACHE_TYPE", "memory")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("POSTBOARD_POSTS_LIMIT", "20")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestPostsCommand(t *testing.T) {
	isolate(t)
	api := &fakeAPI{}
	srv := httptest.NewServer(api)
	defer srv.Close()

	out, err := run(t, "posts", "--base-url", srv.URL, "--limit", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "USER ID: 1")
	assert.Contains(t, out, "Beta")
	assert.Contains(t, out, "USER ID: 2")
	assert.Equal(t, []string{"/posts?_limit=2"}, api.queries)
}

func TestUsersCommand(t *testing.T) {
	isolate(t)
	srv := httptest.NewServer(&fakeAPI{})
	defer srv.Close()

	out, err := run(t, "users", "--base-url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Leanne Graham")
	assert.Contains(t, out, "@Bret")
	assert.NotContains(t, out, "x56442")
}

func TestCommands_FailSoft(t *testing.T) {
	isolate(t)
	srv := httptest.NewServer(&fakeAPI{fail: true})
	defer srv.Close()

	out, err := run(t, "posts", "--base-url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "No posts found or failed to load data.")

	out, err = run(t, "users", "--base-url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "No users found or failed to load data.")
}

func TestLoadConfig_FlagsOverride(t *testing.T) {
	isolate(t)
	t.Setenv("POSTBOARD_BASE_URL", "http://env")

	cfg, err := loadConfig(flags{baseURL: "http://flag", limit: 3, cards: "cards.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "http://flag", cfg.BaseURL)
	assert.Equal(t, 3, cfg.PostsLimit)
	assert.Equal(t, "cards.yaml", cfg.CardsFile)

	cfg, err = loadConfig(flags{})
	require.NoError(t, err)
	assert.Equal(t, "http://env", cfg.BaseURL)
	assert.Equal(t, 20, cfg.PostsLimit)
}

func TestLoadConfig_Invalid(t *testing.T) {
	isolate(t)
	_, err := loadConfig(flags{limit: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "posts limit must be positive")

	_, err = run(t, "posts", "--limit", "-5")
	assert.Error(t, err)
}

func TestToComponentCards(t *testing.T) {
	cards := toComponentCards(config.DefaultCards())
	require.Len(t, cards, 3)
	assert.Equal(t, "Card 1", cards[0].Title)
	assert.Equal(t, "This is the first card content.", cards[0].Content)
}
