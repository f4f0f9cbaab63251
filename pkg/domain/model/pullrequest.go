package model

import (
	"fmt"

	"github.com/google/go-github/v75/github"
)

// PullRequestOpen is the state value GitHub reports for an open pull
// request.
const PullRequestOpen = "open"

// PullRequest is the snapshot of a pull request taken at classification
// time: where it lives, which commit statuses are written against, and
// whether it is still open.
type PullRequest struct {
	Owner   string `json:"owner"`
	Repo    string `json:"repo"`
	Number  int    `json:"number"`
	State   string `json:"state"`
	Title   string `json:"title,omitempty"`
	HeadSHA string `json:"head_sha"`
}

// NewPullRequest converts the GitHub API representation into a snapshot.
// Owner and repo come from the base repository, which is where statuses
// are posted and where the build checks out from.
func NewPullRequest(pr *github.PullRequest) *PullRequest {
	if pr == nil {
		return nil
	}

	repo := pr.GetBase().GetRepo()
	return &PullRequest{
		Owner:   repo.GetOwner().GetLogin(),
		Repo:    repo.GetName(),
		Number:  pr.GetNumber(),
		State:   pr.GetState(),
		Title:   pr.GetTitle(),
		HeadSHA: pr.GetHead().GetSHA(),
	}
}

// IsOpen reports whether the pull request was open when snapshotted.
// Only open pull requests may be built.
func (p *PullRequest) IsOpen() bool {
	return p.State == PullRequestOpen
}

// SourceVersion returns the build source version for this pull request,
// e.g. "pr/42".
func (p *PullRequest) SourceVersion() string {
	return fmt.Sprintf("pr/%d", p.Number)
}

// Slug returns the repository in "owner/name" form.
func (p *PullRequest) Slug() string {
	return p.Owner + "/" + p.Repo
}
