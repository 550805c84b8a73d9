package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/glanceapp/github-activity/pkg/events"
)

const eventsPage = `[
	{
		"id": "1",
		"type": "PushEvent",
		"repo": {"id": 1, "name": "octocat/Hello-World"},
		"payload": {"size": 2, "ref": "refs/heads/main", "commits": [{"sha": "a"}, {"sha": "b"}]},
		"created_at": "2024-05-01T10:00:00Z"
	},
	{
		"id": "2",
		"type": "WatchEvent",
		"repo": {"id": 2, "name": "octocat/Spoon-Knife"},
		"payload": {"action": "started"},
		"created_at": "2024-05-01T09:00:00Z"
	}
]`

const rateLimitBody = `{
	"resources": {
		"core": {"limit": 60, "remaining": 42, "reset": 1714557600}
	},
	"rate": {"limit": 60, "remaining": 42, "reset": 1714557600}
}`

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := zerolog.Nop()
	client, err := NewClient(&Config{
		BaseURL:   srv.URL,
		EventsTTL: time.Minute,
		PageSize:  30,
	}, &logger)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	return client, srv
}

func TestClient_ListEvents(t *testing.T) {
	var requests int
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat/events", func(w http.ResponseWriter, r *http.Request) {
		requests++
		if got := r.URL.Query().Get("per_page"); got != "30" {
			t.Errorf("per_page = %q, want %q", got, "30")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(eventsPage))
	})

	client, _ := newTestClient(t, mux)

	list, err := client.ListEvents(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("ListEvents() error = %v", err)
	}

	if len(list) != 2 {
		t.Fatalf("ListEvents() returned %d events, want 2", len(list))
	}

	first := list[0]
	if first.Type != events.TypePush || first.Repo != "octocat/Hello-World" || first.CommitCount != 2 {
		t.Errorf("unexpected first event: %+v", first)
	}
	if first.Ref != "main" {
		t.Errorf("Ref = %q, want %q", first.Ref, "main")
	}
	if list[1].Type != events.TypeWatch {
		t.Errorf("second event type = %q, want %q", list[1].Type, events.TypeWatch)
	}

	// Second call within the TTL must come from the cache.
	if _, err := client.ListEvents(context.Background(), "octocat"); err != nil {
		t.Fatalf("ListEvents() second call error = %v", err)
	}
	if requests != 1 {
		t.Errorf("API was hit %d times, want 1", requests)
	}
}

func TestClient_ListEvents_UserNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/ghost/events", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Not Found"}`))
	})

	client, _ := newTestClient(t, mux)

	_, err := client.ListEvents(context.Background(), "ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("ListEvents() error = %v, want ErrUserNotFound", err)
	}
}

func TestClient_ListEvents_RateLimited(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/busy/events", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Ratelimit-Limit", "60")
		w.Header().Set("X-Ratelimit-Remaining", "0")
		w.Header().Set("X-Ratelimit-Reset", "1714557600")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message": "API rate limit exceeded"}`))
	})

	client, _ := newTestClient(t, mux)

	_, err := client.ListEvents(context.Background(), "busy")
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("ListEvents() error = %v, want ErrRateLimited", err)
	}
}

func TestClient_RateLimit(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/rate_limit", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(rateLimitBody))
	})

	client, _ := newTestClient(t, mux)

	usage, err := client.RateLimit(context.Background())
	if err != nil {
		t.Fatalf("RateLimit() error = %v", err)
	}

	if usage.Limit != 60 || usage.Remaining != 42 || usage.Used != 18 {
		t.Errorf("unexpected usage: %+v", usage)
	}
	if usage.ResetAt.IsZero() {
		t.Error("ResetAt should be set")
	}
}
