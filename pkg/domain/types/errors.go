package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify pipeline failures so callers can react to the kind of
// failure without inspecting messages. The HTTP layer maps them to response
// codes; everything untagged is treated as an internal failure.
var (
	// ErrTagAuth marks webhook deliveries that failed verification:
	// a required header is missing or the signature does not match.
	ErrTagAuth = goerr.NewTag("auth")

	// ErrTagNotBuildable marks events that verified fine but do not
	// satisfy the trigger rules. Nothing to do, not an operational
	// failure.
	ErrTagNotBuildable = goerr.NewTag("not_buildable")

	// ErrTagCredential marks secret store or authentication failures.
	// No build is attempted after one of these.
	ErrTagCredential = goerr.NewTag("credential")

	// ErrTagBuildService marks CodeBuild start/lookup failures.
	ErrTagBuildService = goerr.NewTag("build_service")

	// ErrTagStatusPost marks rejected commit status writes.
	ErrTagStatusPost = goerr.NewTag("status_post")

	// ErrTagNotFound marks lookups of build ids the build service does
	// not know.
	ErrTagNotFound = goerr.NewTag("not_found")
)
