package model

import (
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
)

// EventType represents the type of webhook event received
type EventType string

const (
	EventTypePullRequest  EventType = "pull_request"
	EventTypeIssueComment EventType = "issue_comment"
	EventTypeOther        EventType = "other"
)

// InboundEvent is a webhook delivery as it arrived on the wire: the raw
// body plus the headers needed for verification. It is captured before
// any decoding so the signature check runs over the exact bytes GitHub
// signed.
type InboundEvent struct {
	Delivery   string    // Retrieved from X-GitHub-Delivery header
	Name       string    // Retrieved from X-GitHub-Event header
	Signature  string    // Retrieved from X-Hub-Signature header
	Body       []byte    // Raw JSON payload
	ReceivedAt time.Time // Time when the delivery was received
}

// Event is the decoded form of an InboundEvent. Exactly one variant is
// populated: PullRequest for pull_request events, Issue+Comment for
// issue_comment events, neither for anything else.
type Event struct {
	ID         string
	Type       EventType
	Action     string
	ReceivedAt time.Time

	PullRequest *PullRequest
	Issue       *Issue
	Comment     *Comment
}

// Issue identifies the issue an issue_comment event was posted on.
// PullRequest is true when the issue is the discussion thread of a
// pull request.
type Issue struct {
	Owner       string
	Repo        string
	Number      int
	PullRequest bool
}

// Comment is the comment body and author of an issue_comment event.
type Comment struct {
	Body string
	User string
}

// DecodeEvent parses an inbound delivery into a typed Event. Deliveries
// for event names other than pull_request and issue_comment decode to
// EventTypeOther without touching the body.
func DecodeEvent(in *InboundEvent) (*Event, error) {
	ev := &Event{
		ID:         in.Delivery,
		ReceivedAt: in.ReceivedAt,
	}

	switch in.Name {
	case "pull_request":
		ev.Type = EventTypePullRequest
	case "issue_comment":
		ev.Type = EventTypeIssueComment
	default:
		ev.Type = EventTypeOther
		return ev, nil
	}

	payload, err := github.ParseWebHook(in.Name, in.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode webhook payload",
			goerr.V("event", in.Name),
			goerr.V("delivery", in.Delivery),
		)
	}

	switch p := payload.(type) {
	case *github.PullRequestEvent:
		ev.Action = p.GetAction()
		ev.PullRequest = NewPullRequest(p.GetPullRequest())

	case *github.IssueCommentEvent:
		ev.Action = p.GetAction()
		repo := p.GetRepo()
		issue := p.GetIssue()
		ev.Issue = &Issue{
			Owner:       repo.GetOwner().GetLogin(),
			Repo:        repo.GetName(),
			Number:      issue.GetNumber(),
			PullRequest: issue.IsPullRequest(),
		}
		comment := p.GetComment()
		ev.Comment = &Comment{
			Body: comment.GetBody(),
			User: comment.GetUser().GetLogin(),
		}
	}

	return ev, nil
}
