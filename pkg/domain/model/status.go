package model

// StatusState is a commit status state in the GitHub vocabulary.
type StatusState string

const (
	StatusPending StatusState = "pending"
	StatusSuccess StatusState = "success"
	StatusFailure StatusState = "failure"
	StatusError   StatusState = "error"
)

// CommitStatus is a status marker written against the head commit of a
// pull request. Write-only projection; GitHub is the system of record.
type CommitStatus struct {
	State       StatusState
	Context     string
	Description string
	TargetURL   string
}

// StatusForBuild maps a build lifecycle state onto the commit status
// vocabulary. Anything that is not a recognized terminal state reports
// as pending.
func StatusForBuild(status BuildStatus) StatusState {
	switch status {
	case BuildSucceeded:
		return StatusSuccess
	case BuildFailed:
		return StatusFailure
	case BuildFault, BuildStopped, BuildTimedOut:
		return StatusError
	default:
		return StatusPending
	}
}
