package model

import (
	"slices"
	"strings"
)

// TriggerKind names a way a webhook event can request a build.
type TriggerKind string

const (
	// TriggerPullRequest builds on pull request lifecycle actions.
	TriggerPullRequest TriggerKind = "pr_state"

	// TriggerComment builds when the trigger phrase is posted as a
	// comment on a pull request.
	TriggerComment TriggerKind = "pr_comment"
)

// DefaultTriggerPhrase is the comment body that requests a build when
// no phrase is configured.
const DefaultTriggerPhrase = "go codebuild go"

// TriggerRules decides which webhook deliveries start a build.
type TriggerRules struct {
	Enabled        []TriggerKind `toml:"enabled"`
	PullActions    []string      `toml:"pull_actions"`
	CommentActions []string      `toml:"comment_actions"`
	Phrase         string        `toml:"phrase"`
	AllowedUsers   []string      `toml:"allowed_users"`
}

// DefaultTriggerRules returns the rule set used when nothing is
// configured: both trigger kinds enabled, the stock action verbs, the
// default phrase, no commenter restriction.
func DefaultTriggerRules() *TriggerRules {
	return &TriggerRules{
		Enabled:        []TriggerKind{TriggerPullRequest, TriggerComment},
		PullActions:    []string{"opened", "reopened", "synchronize"},
		CommentActions: []string{"created"},
		Phrase:         DefaultTriggerPhrase,
	}
}

// KindEnabled reports whether the given trigger kind is switched on.
func (r *TriggerRules) KindEnabled(kind TriggerKind) bool {
	return slices.Contains(r.Enabled, kind)
}

// PullActionAllowed reports whether a pull_request action verb is one
// that triggers builds.
func (r *TriggerRules) PullActionAllowed(action string) bool {
	return slices.Contains(r.PullActions, action)
}

// CommentActionAllowed reports whether an issue_comment action verb is
// considered at all.
func (r *TriggerRules) CommentActionAllowed(action string) bool {
	return slices.Contains(r.CommentActions, action)
}

// PhraseMatches reports whether a comment body is the trigger phrase.
// The comparison is an exact match ignoring case.
func (r *TriggerRules) PhraseMatches(body string) bool {
	return strings.EqualFold(body, r.Phrase)
}

// UserAllowed reports whether a commenter may trigger builds. An empty
// allow list places no restriction.
func (r *TriggerRules) UserAllowed(user string) bool {
	if len(r.AllowedUsers) == 0 {
		return true
	}
	return slices.Contains(r.AllowedUsers, user)
}
