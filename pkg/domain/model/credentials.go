package model

// Credentials authenticate against the GitHub API. The token is tagged
// so log redaction strips it before any handler sees it.
type Credentials struct {
	Username string
	Token    string `masq:"secret"`
}
