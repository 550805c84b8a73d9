package github

import (
	"strings"

	"github.com/google/go-github/v72/github"

	"github.com/glanceapp/github-activity/pkg/events"
)

// normalizeEvent flattens a wire event into the domain model. Payloads
// that cannot be parsed leave the payload fields at their zero values;
// the formatter handles those with its generic fallback.
func (c *Client) normalizeEvent(raw *github.Event) events.Event {
	e := events.Event{
		Type:      raw.GetType(),
		Repo:      raw.GetRepo().GetName(),
		CreatedAt: raw.GetCreatedAt().Time,
	}

	if raw.Type == nil || raw.RawPayload == nil {
		return e
	}

	payload, err := raw.ParsePayload()
	if err != nil {
		c.logger.Debug().
			Err(err).
			Str("type", e.Type).
			Msg("Failed to parse event payload")
		return e
	}

	switch p := payload.(type) {
	case *github.PushEvent:
		e.CommitCount = p.GetSize()
		if e.CommitCount == 0 {
			e.CommitCount = len(p.Commits)
		}
		e.Ref = strings.TrimPrefix(p.GetRef(), "refs/heads/")
	case *github.PullRequestEvent:
		e.Action = p.GetAction()
		e.Number = p.GetNumber()
		e.Title = p.GetPullRequest().GetTitle()
		e.Merged = p.GetPullRequest().GetMerged()
	case *github.WatchEvent:
		e.Action = p.GetAction()
	case *github.IssuesEvent:
		e.Action = p.GetAction()
		e.Number = p.GetIssue().GetNumber()
		e.Title = p.GetIssue().GetTitle()
	case *github.ForkEvent:
		e.ForkeeRepo = p.GetForkee().GetFullName()
	case *github.CreateEvent:
		e.Ref = p.GetRef()
		e.RefType = p.GetRefType()
	case *github.DeleteEvent:
		e.Ref = p.GetRef()
		e.RefType = p.GetRefType()
	case *github.IssueCommentEvent:
		e.Action = p.GetAction()
		e.Number = p.GetIssue().GetNumber()
	case *github.ReleaseEvent:
		e.Action = p.GetAction()
		e.ReleaseTag = p.GetRelease().GetTagName()
	}

	return e
}
