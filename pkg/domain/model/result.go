package model

// TriggerOutcome tells the webhook caller what a delivery produced.
type TriggerOutcome string

const (
	// OutcomeTriggered means a build was started.
	OutcomeTriggered TriggerOutcome = "triggered"

	// OutcomeIgnored means the delivery verified fine but did not
	// warrant a build.
	OutcomeIgnored TriggerOutcome = "ignored"
)

// TriggerResult is the terminal value of webhook processing, echoed to
// the caller. PullRequest and Build are set only for triggered
// outcomes; Reason is set only for ignored ones.
type TriggerResult struct {
	Outcome     TriggerOutcome `json:"outcome"`
	Reason      string         `json:"reason,omitempty"`
	PullRequest *PullRequest   `json:"pull_request,omitempty"`
	Build       *BuildRecord   `json:"build,omitempty"`
}
