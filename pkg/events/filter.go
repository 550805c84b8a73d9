package events

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// categories maps the short names accepted on the command line to the
// event type tag they select.
var categories = map[string]string{
	"push":    TypePush,
	"pull":    TypePullRequest,
	"star":    TypeWatch,
	"issues":  TypeIssues,
	"fork":    TypeFork,
	"create":  TypeCreate,
	"delete":  TypeDelete,
	"comment": TypeIssueComment,
	"release": TypeRelease,
}

// Filter restricts a sequence of events to one event type. The zero
// value matches everything.
type Filter struct {
	Type string
}

// NewFilter resolves a category name into a filter. Unknown names are an
// error; when a close match exists it is included as a suggestion.
func NewFilter(category string) (Filter, error) {
	if category == "" {
		return Filter{}, nil
	}

	typ, ok := categories[strings.ToLower(category)]
	if !ok {
		if suggestion := closestCategory(category); suggestion != "" {
			return Filter{}, fmt.Errorf("unknown event type %q (did you mean %q?)", category, suggestion)
		}
		return Filter{}, fmt.Errorf("unknown event type %q, expected one of: %s", category, strings.Join(CategoryNames(), ", "))
	}

	return Filter{Type: typ}, nil
}

// Matches reports whether the event passes the filter.
func (f Filter) Matches(e Event) bool {
	return f.Type == "" || f.Type == e.Type
}

// CategoryNames returns the accepted category names in stable order.
func CategoryNames() []string {
	return []string{"push", "pull", "star", "issues", "fork", "create", "delete", "comment", "release"}
}

func closestCategory(input string) string {
	matches := fuzzy.RankFindNormalizedFold(input, CategoryNames())
	if len(matches) == 0 {
		return ""
	}

	best := matches[0]
	for _, m := range matches[1:] {
		if m.Distance < best.Distance {
			best = m
		}
	}
	return best.Target
}
