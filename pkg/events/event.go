// Package events holds the normalized activity event model and the
// formatting logic that turns one event into a user-facing line.
package events

import "time"

// Known event type tags as they appear on the GitHub events API.
const (
	TypePush         = "PushEvent"
	TypePullRequest  = "PullRequestEvent"
	TypeWatch        = "WatchEvent"
	TypeIssues       = "IssuesEvent"
	TypeFork         = "ForkEvent"
	TypeCreate       = "CreateEvent"
	TypeDelete       = "DeleteEvent"
	TypeIssueComment = "IssueCommentEvent"
	TypeRelease      = "ReleaseEvent"
	TypePublic       = "PublicEvent"
	TypeMember       = "MemberEvent"
)

// Event is one unit of user activity, flattened from the wire payload.
// Payload-derived fields are optional; a zero value means the field was
// absent and formatting falls back to a less specific message.
type Event struct {
	Type      string
	Repo      string
	CreatedAt time.Time

	CommitCount int
	Action      string
	Ref         string
	RefType     string
	ForkeeRepo  string
	Number      int
	Title       string
	ReleaseTag  string
	Merged      bool
}
