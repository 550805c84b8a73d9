// Package cli implements the github-activity command surface: argument
// parsing, output rendering and exit codes.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/glanceapp/github-activity/pkg/events"
	"github.com/glanceapp/github-activity/pkg/github"
)

// ActivitySource is the client surface the app depends on. Tests
// substitute a stub implementation.
type ActivitySource interface {
	ListEvents(ctx context.Context, username string) ([]events.Event, error)
	RateLimit(ctx context.Context) (*github.RateUsage, error)
}

// Remaining-request band that triggers a low-quota warning after a
// successful listing.
const (
	lowQuotaMin = 1
	lowQuotaMax = 5
)

type App struct {
	source  ActivitySource
	logger  *zerolog.Logger
	version string
	stdout  io.Writer
	stderr  io.Writer
}

func NewApp(source ActivitySource, logger *zerolog.Logger, version string) *App {
	return &App{
		source:  source,
		logger:  logger,
		version: version,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
}

type appFlags struct {
	limit       int
	showUsage   bool
	showVersion bool
}

// Run executes the command and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("github-activity", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() { a.printHelp() }

	var flags appFlags
	fs.IntVar(&flags.limit, "limit", 30, "maximum number of events to display")
	fs.BoolVar(&flags.showUsage, "usage", false, "print API rate limit usage and exit")
	fs.BoolVar(&flags.showVersion, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if flags.showVersion {
		fmt.Fprintf(a.stdout, "github-activity %s\n", a.version)
		return 0
	}

	if flags.showUsage {
		if fs.NArg() > 0 {
			fmt.Fprintln(a.stderr, "Error: -usage does not take a username")
			return 1
		}
		return a.runUsage(ctx)
	}

	username := fs.Arg(0)
	if username == "" {
		a.printHelp()
		return 1
	}

	if flags.limit <= 0 {
		fmt.Fprintln(a.stderr, "Error: -limit must be positive")
		return 1
	}

	filter, err := events.NewFilter(fs.Arg(1))
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}

	return a.runList(ctx, username, filter, flags.limit)
}

// runList fetches and prints the activity listing. The rate-limit probe
// runs alongside the listing and is best-effort: its failure never fails
// the command.
func (a *App) runList(ctx context.Context, username string, filter events.Filter, limit int) int {
	var (
		list []events.Event
		rate *github.RateUsage
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		list, err = a.source.ListEvents(gctx, username)
		if err != nil {
			return fmt.Errorf("fetch events for %s: %w", username, err)
		}
		return nil
	})
	g.Go(func() error {
		usage, err := a.source.RateLimit(gctx)
		if err != nil {
			a.logger.Debug().Err(err).Msg("Failed to fetch rate limit")
			return nil
		}
		rate = usage
		return nil
	})

	if err := g.Wait(); err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}

	printed := 0
	for _, e := range list {
		if !filter.Matches(e) {
			continue
		}
		if printed >= limit {
			break
		}
		fmt.Fprintf(a.stdout, "- %s\n", events.Format(e))
		printed++
	}

	if printed == 0 {
		if filter.Type != "" {
			fmt.Fprintf(a.stdout, "No %s activity found for %s\n", filter.Type, username)
		} else {
			fmt.Fprintf(a.stdout, "No recent activity found for %s\n", username)
		}
	}

	if rate != nil && rate.Remaining >= lowQuotaMin && rate.Remaining <= lowQuotaMax {
		a.logger.Warn().
			Int("remaining", rate.Remaining).
			Time("reset_at", rate.ResetAt).
			Msg("API request quota is almost exhausted")
	}

	return 0
}

func (a *App) runUsage(ctx context.Context) int {
	rate, err := a.source.RateLimit(ctx)
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: fetch rate limit: %v\n", err)
		return 1
	}

	fmt.Fprintln(a.stdout, "Overall API request usage:")
	fmt.Fprintf(a.stdout, "  Used:      %d\n", rate.Used)
	fmt.Fprintf(a.stdout, "  Usage:     %d/%d\n", rate.Remaining, rate.Limit)
	fmt.Fprintf(a.stdout, "  Reset at:  %s\n", rate.ResetAt.Local().Format("03:04:05 PM | January 02, 2006"))

	if rate.Remaining >= lowQuotaMin && rate.Remaining <= lowQuotaMax {
		a.logger.Warn().
			Int("remaining", rate.Remaining).
			Msg("API request quota is almost exhausted")
	}

	return 0
}

func (a *App) printHelp() {
	fmt.Fprintf(a.stderr, `github-activity - display recent GitHub activity for a user

Usage:
  github-activity [flags] <username> [event]

Arguments:
  username    GitHub username
  event       optional event type filter: %s

Flags:
  -limit N    maximum number of events to display (default 30)
  -usage      print API rate limit usage and exit
  -version    print version and exit
  -h          print this help

Examples:
  github-activity torvalds
  github-activity torvalds push
  github-activity -limit 5 octocat star
  github-activity -usage
`, strings.Join(events.CategoryNames(), ", "))
}
