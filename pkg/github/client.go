// Package github wraps the GitHub REST API behind the small surface the
// CLI needs: one events listing per user and the rate-limit quota.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/go-github/v72/github"
	"github.com/rs/zerolog"

	"github.com/glanceapp/github-activity/pkg/events"
	"github.com/glanceapp/github-activity/pkg/lib"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrRateLimited  = errors.New("API rate limit exceeded")
)

// RateUsage describes the core API quota of the current client identity.
type RateUsage struct {
	Limit     int
	Remaining int
	Used      int
	ResetAt   time.Time
}

type Client struct {
	gh       *github.Client
	cache    *lib.Cache[[]events.Event]
	logger   *zerolog.Logger
	pageSize int
}

func NewClient(cfg *Config, logger *zerolog.Logger) (*Client, error) {
	gh := github.NewClient(nil)
	if cfg.Token != "" {
		gh = gh.WithAuthToken(cfg.Token)
	}

	if cfg.BaseURL != "" {
		base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("parse base URL: %w", err)
		}
		gh.BaseURL = base
	}

	return &Client{
		gh:       gh,
		cache:    lib.NewCache[[]events.Event](cfg.EventsTTL, logger),
		logger:   logger,
		pageSize: cfg.PageSize,
	}, nil
}

// ListEvents fetches the most recent public activity of one user,
// normalized into domain events. Listings are cached per username for
// the configured TTL.
func (c *Client) ListEvents(ctx context.Context, username string) ([]events.Event, error) {
	key := lib.HashParams("events", username, strconv.Itoa(c.pageSize))
	if cached, ok := c.cache.Get(key); ok {
		return cached, nil
	}

	raw, _, err := c.gh.Activity.ListEventsPerformedByUser(ctx, username, false, &github.ListOptions{
		PerPage: c.pageSize,
	})
	if err != nil {
		return nil, c.mapError(err, username)
	}

	out := make([]events.Event, 0, len(raw))
	for _, e := range raw {
		out = append(out, c.normalizeEvent(e))
	}

	c.logger.Debug().
		Str("username", username).
		Int("events", len(out)).
		Msg("Fetched user events")

	c.cache.Set(key, out)

	return out, nil
}

// RateLimit fetches the core rate-limit quota. The dedicated endpoint
// does not count against the quota itself.
func (c *Client) RateLimit(ctx context.Context) (*RateUsage, error) {
	limits, _, err := c.gh.RateLimit.Get(ctx)
	if err != nil {
		return nil, c.mapError(err, "")
	}

	core := limits.GetCore()
	if core == nil {
		return nil, fmt.Errorf("rate limit response missing core quota")
	}

	return &RateUsage{
		Limit:     core.Limit,
		Remaining: core.Remaining,
		Used:      core.Limit - core.Remaining,
		ResetAt:   core.Reset.Time,
	}, nil
}

func (c *Client) mapError(err error, username string) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return ErrRateLimited
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return ErrRateLimited
	}

	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		switch respErr.Response.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrUserNotFound, username)
		case http.StatusForbidden, http.StatusTooManyRequests:
			return ErrRateLimited
		}
	}

	return fmt.Errorf("github request: %w", err)
}
