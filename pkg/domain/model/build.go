package model

import (
	"fmt"
	"time"
)

// BuildStatus represents the lifecycle state of a remote build. Values
// not listed here pass through verbatim from the build service and are
// treated as non-terminal.
type BuildStatus string

const (
	BuildRunning   BuildStatus = "RUNNING"
	BuildSucceeded BuildStatus = "SUCCEEDED"
	BuildFailed    BuildStatus = "FAILED"
	BuildFault     BuildStatus = "FAULT"
	BuildStopped   BuildStatus = "STOPPED"
	BuildTimedOut  BuildStatus = "TIMED_OUT"
)

// Terminal reports whether the status will not change again.
func (s BuildStatus) Terminal() bool {
	switch s {
	case BuildSucceeded, BuildFailed, BuildFault, BuildStopped, BuildTimedOut:
		return true
	default:
		return false
	}
}

// BuildRecord identifies a build started for a pull request. Created
// when the build is triggered, mutated only by the build service, and
// read back by polling.
type BuildRecord struct {
	ID            string      `json:"id"`
	Project       string      `json:"project"`
	SourceVersion string      `json:"source_version"`
	Status        BuildStatus `json:"status"`
	StartedAt     time.Time   `json:"started_at"`
}

// ConsoleURL returns the AWS console page showing the build, used as
// the target URL of posted commit statuses.
func (b *BuildRecord) ConsoleURL(region string) string {
	return fmt.Sprintf("https://%s.console.aws.amazon.com/codebuild/home?region=%s#/builds/%s/view/new",
		region, region, b.ID)
}
