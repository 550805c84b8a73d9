package events

import (
	"strings"
	"testing"
)

func TestNewFilter_Categories(t *testing.T) {
	tests := []struct {
		category string
		wantType string
	}{
		{category: "", wantType: ""},
		{category: "push", wantType: TypePush},
		{category: "pull", wantType: TypePullRequest},
		{category: "star", wantType: TypeWatch},
		{category: "issues", wantType: TypeIssues},
		{category: "fork", wantType: TypeFork},
		{category: "create", wantType: TypeCreate},
		{category: "delete", wantType: TypeDelete},
		{category: "comment", wantType: TypeIssueComment},
		{category: "release", wantType: TypeRelease},
		{category: "PUSH", wantType: TypePush},
	}

	for _, tt := range tests {
		t.Run("category "+tt.category, func(t *testing.T) {
			f, err := NewFilter(tt.category)
			if err != nil {
				t.Fatalf("NewFilter(%q) error = %v", tt.category, err)
			}
			if f.Type != tt.wantType {
				t.Errorf("NewFilter(%q).Type = %q, want %q", tt.category, f.Type, tt.wantType)
			}
		})
	}
}

func TestNewFilter_UnknownCategory(t *testing.T) {
	_, err := NewFilter("bogus-nothing-alike")
	if err == nil {
		t.Fatal("NewFilter() expected error for unknown category")
	}
	if !strings.Contains(err.Error(), "bogus-nothing-alike") {
		t.Errorf("error %q should mention the rejected input", err)
	}
}

func TestNewFilter_SuggestsClosestCategory(t *testing.T) {
	_, err := NewFilter("isues")
	if err == nil {
		t.Fatal("NewFilter() expected error for misspelled category")
	}
	if !strings.Contains(err.Error(), `did you mean "issues"`) {
		t.Errorf("error %q should suggest the issues category", err)
	}
}

func TestFilter_Matches(t *testing.T) {
	push := Event{Type: TypePush, Repo: "x/y"}
	star := Event{Type: TypeWatch, Repo: "x/y"}

	all := Filter{}
	if !all.Matches(push) || !all.Matches(star) {
		t.Error("zero filter should match every event")
	}

	onlyPush := Filter{Type: TypePush}
	if !onlyPush.Matches(push) {
		t.Error("push filter should match push events")
	}
	if onlyPush.Matches(star) {
		t.Error("push filter should not match watch events")
	}
}
