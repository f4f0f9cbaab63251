package model_test

import (
	"testing"

	"github.com/buildgate/buildgate/pkg/domain/model"
	"github.com/google/go-github/v75/github"
)

func TestNewPullRequest(t *testing.T) {
	pr := model.NewPullRequest(&github.PullRequest{
		Number: github.Ptr(42),
		State:  github.Ptr("open"),
		Title:  github.Ptr("Add retry to uploader"),
		Head:   &github.PullRequestBranch{SHA: github.Ptr("abc1234")},
		Base: &github.PullRequestBranch{
			Repo: &github.Repository{
				Name:  github.Ptr("r"),
				Owner: &github.User{Login: github.Ptr("o")},
			},
		},
	})

	if pr.Owner != "o" || pr.Repo != "r" {
		t.Errorf("repo = %s/%s, want o/r", pr.Owner, pr.Repo)
	}
	if pr.Number != 42 {
		t.Errorf("Number = %d, want 42", pr.Number)
	}
	if pr.HeadSHA != "abc1234" {
		t.Errorf("HeadSHA = %q, want abc1234", pr.HeadSHA)
	}
	if !pr.IsOpen() {
		t.Error("IsOpen() = false, want true")
	}
	if pr.SourceVersion() != "pr/42" {
		t.Errorf("SourceVersion() = %q, want pr/42", pr.SourceVersion())
	}
	if pr.Slug() != "o/r" {
		t.Errorf("Slug() = %q, want o/r", pr.Slug())
	}
}

func TestNewPullRequest_Nil(t *testing.T) {
	if pr := model.NewPullRequest(nil); pr != nil {
		t.Errorf("NewPullRequest(nil) = %v, want nil", pr)
	}
}

func TestPullRequest_IsOpen(t *testing.T) {
	tests := []struct {
		state    string
		expected bool
	}{
		{"open", true},
		{"closed", false},
		{"merged", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			pr := &model.PullRequest{State: tt.state}
			if got := pr.IsOpen(); got != tt.expected {
				t.Errorf("IsOpen() = %v, want %v", got, tt.expected)
			}
		})
	}
}
