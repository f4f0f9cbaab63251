package model_test

import (
	"testing"

	"github.com/buildgate/buildgate/pkg/domain/model"
)

func TestTriggerRules_Defaults(t *testing.T) {
	rules := model.DefaultTriggerRules()

	if !rules.KindEnabled(model.TriggerPullRequest) {
		t.Error("pr_state must be enabled by default")
	}
	if !rules.KindEnabled(model.TriggerComment) {
		t.Error("pr_comment must be enabled by default")
	}
	if rules.Phrase != "go codebuild go" {
		t.Errorf("Phrase = %q, want go codebuild go", rules.Phrase)
	}
	if !rules.UserAllowed("anyone") {
		t.Error("empty allow list must not restrict commenters")
	}
}

func TestTriggerRules_PullActionAllowed(t *testing.T) {
	rules := model.DefaultTriggerRules()

	tests := []struct {
		action   string
		expected bool
	}{
		{"opened", true},
		{"reopened", true},
		{"synchronize", true},
		{"closed", false},
		{"edited", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			if got := rules.PullActionAllowed(tt.action); got != tt.expected {
				t.Errorf("PullActionAllowed(%q) = %v, want %v", tt.action, got, tt.expected)
			}
		})
	}
}

func TestTriggerRules_PhraseMatches(t *testing.T) {
	rules := model.DefaultTriggerRules()

	tests := []struct {
		name     string
		body     string
		expected bool
	}{
		{"exact", "go codebuild go", true},
		{"upper case", "GO CODEBUILD GO", true},
		{"mixed case", "Go CodeBuild Go", true},
		{"different text", "please build", false},
		{"phrase embedded in sentence", "ok go codebuild go now", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rules.PhraseMatches(tt.body); got != tt.expected {
				t.Errorf("PhraseMatches(%q) = %v, want %v", tt.body, got, tt.expected)
			}
		})
	}
}

func TestTriggerRules_UserAllowed(t *testing.T) {
	rules := model.DefaultTriggerRules()
	rules.AllowedUsers = []string{"alice", "bob"}

	tests := []struct {
		user     string
		expected bool
	}{
		{"alice", true},
		{"bob", true},
		{"mallory", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.user, func(t *testing.T) {
			if got := rules.UserAllowed(tt.user); got != tt.expected {
				t.Errorf("UserAllowed(%q) = %v, want %v", tt.user, got, tt.expected)
			}
		})
	}
}

func TestTriggerRules_KindDisabled(t *testing.T) {
	rules := model.DefaultTriggerRules()
	rules.Enabled = []model.TriggerKind{model.TriggerComment}

	if rules.KindEnabled(model.TriggerPullRequest) {
		t.Error("pr_state must be disabled when not listed")
	}
	if !rules.KindEnabled(model.TriggerComment) {
		t.Error("pr_comment must stay enabled")
	}
}
