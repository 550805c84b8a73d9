package github

import "time"

// Config holds the GitHub API settings. A token is optional; without one
// the unauthenticated rate budget (60 requests/hour) applies.
type Config struct {
	Token     string        `env:"GITHUB_TOKEN"`
	BaseURL   string        `env:"GITHUB_BASE_URL" validate:"omitempty,url"`
	EventsTTL time.Duration `env:"GITHUB_EVENTS_TTL,default=5m"`
	PageSize  int           `env:"GITHUB_PAGE_SIZE,default=30" validate:"min=1,max=100"`
}
