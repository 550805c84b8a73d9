package events

import (
	"fmt"
	"strings"
)

// Format renders a single event as a one-line description. It is a pure
// function: unrecognized types and missing payload fields degrade to a
// generic message instead of failing.
func Format(e Event) string {
	switch e.Type {
	case TypePush:
		return formatPush(e)
	case TypePullRequest:
		return formatPullRequest(e)
	case TypeWatch:
		return fmt.Sprintf("Starred %s", e.Repo)
	case TypeIssues:
		return formatIssues(e)
	case TypeFork:
		if e.ForkeeRepo != "" {
			return fmt.Sprintf("Forked %s to %s", e.Repo, e.ForkeeRepo)
		}
		return fmt.Sprintf("Forked %s", e.Repo)
	case TypeCreate:
		return formatRef("Created", e)
	case TypeDelete:
		return formatRef("Deleted", e)
	case TypeIssueComment:
		if e.Number > 0 {
			return fmt.Sprintf("Commented on issue #%d in %s", e.Number, e.Repo)
		}
		return fmt.Sprintf("Commented on an issue in %s", e.Repo)
	case TypeRelease:
		if e.ReleaseTag != "" {
			return fmt.Sprintf("Published release %s in %s", e.ReleaseTag, e.Repo)
		}
		return fmt.Sprintf("Published a release in %s", e.Repo)
	case TypePublic:
		return fmt.Sprintf("Made %s public", e.Repo)
	case TypeMember:
		return fmt.Sprintf("Added a member to %s", e.Repo)
	default:
		return fmt.Sprintf("%s event in %s", e.Type, e.Repo)
	}
}

func formatPush(e Event) string {
	switch e.CommitCount {
	case 0:
		// Force pushes and branch resets report an empty commit list.
		return fmt.Sprintf("Pushed to %s", e.Repo)
	case 1:
		return fmt.Sprintf("Pushed 1 commit to %s", e.Repo)
	default:
		return fmt.Sprintf("Pushed %d commits to %s", e.CommitCount, e.Repo)
	}
}

func formatPullRequest(e Event) string {
	switch e.Action {
	case "opened":
		return fmt.Sprintf("Opened a pull request in %s", e.Repo)
	case "closed":
		if e.Merged {
			return fmt.Sprintf("Merged a pull request in %s", e.Repo)
		}
		return fmt.Sprintf("Closed a pull request in %s", e.Repo)
	case "reopened":
		return fmt.Sprintf("Reopened a pull request in %s", e.Repo)
	case "":
		return fmt.Sprintf("Updated a pull request in %s", e.Repo)
	default:
		return fmt.Sprintf("%s a pull request in %s", titleCase(e.Action), e.Repo)
	}
}

func formatIssues(e Event) string {
	switch e.Action {
	case "opened", "":
		return fmt.Sprintf("Opened a new issue in %s", e.Repo)
	default:
		return fmt.Sprintf("%s an issue in %s", titleCase(e.Action), e.Repo)
	}
}

func formatRef(verb string, e Event) string {
	switch e.RefType {
	case "repository":
		if verb == "Created" {
			return fmt.Sprintf("Created a new repository %s", e.Repo)
		}
		return fmt.Sprintf("%s repository %s", verb, e.Repo)
	case "branch", "tag":
		if e.Ref != "" {
			return fmt.Sprintf("%s %s %s in %s", verb, e.RefType, e.Ref, e.Repo)
		}
		return fmt.Sprintf("%s a %s in %s", verb, e.RefType, e.Repo)
	default:
		return fmt.Sprintf("%s %s", verb, e.Repo)
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
