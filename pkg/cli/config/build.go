package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/buildgate/buildgate/pkg/domain/model"
)

// Build holds build trigger configuration: which CodeBuild project to
// run and which webhook deliveries may start it.
type Build struct {
	Project      string
	Triggers     []string
	Phrase       string
	AllowedUsers []string
	RulesFile    string
}

// Flags returns CLI flags for build configuration
func (c *Build) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "build-project",
			Usage:       "CodeBuild project to run",
			Required:    true,
			Destination: &c.Project,
			Sources:     cli.EnvVars("BUILDGATE_BUILD_PROJECT"),
		},
		&cli.StringSliceFlag{
			Name:        "build-trigger",
			Usage:       "Enabled trigger kinds (pr_state, pr_comment)",
			Value:       []string{string(model.TriggerPullRequest), string(model.TriggerComment)},
			Destination: &c.Triggers,
			Sources:     cli.EnvVars("BUILDGATE_BUILD_TRIGGERS"),
		},
		&cli.StringFlag{
			Name:        "build-phrase",
			Usage:       "Comment body that requests a build",
			Value:       model.DefaultTriggerPhrase,
			Destination: &c.Phrase,
			Sources:     cli.EnvVars("BUILDGATE_BUILD_PHRASE"),
		},
		&cli.StringSliceFlag{
			Name:        "build-allowed-user",
			Usage:       "Commenters allowed to trigger builds (empty = unrestricted)",
			Destination: &c.AllowedUsers,
			Sources:     cli.EnvVars("BUILDGATE_BUILD_ALLOWED_USERS"),
		},
		&cli.StringFlag{
			Name:        "build-rules-file",
			Usage:       "TOML file overriding trigger rules",
			Destination: &c.RulesFile,
			Sources:     cli.EnvVars("BUILDGATE_BUILD_RULES_FILE"),
		},
	}
}

// rulesFile mirrors TriggerRules with absence detection: keys missing
// from the file stay nil and leave the flag-derived value alone.
type rulesFile struct {
	Enabled        []model.TriggerKind `toml:"enabled"`
	PullActions    []string            `toml:"pull_actions"`
	CommentActions []string            `toml:"comment_actions"`
	Phrase         *string             `toml:"phrase"`
	AllowedUsers   []string            `toml:"allowed_users"`
}

// Rules resolves the effective trigger rules: defaults, then flag
// values, then the optional TOML file overlaying only the keys it
// contains.
func (c *Build) Rules() (*model.TriggerRules, error) {
	rules := model.DefaultTriggerRules()

	if len(c.Triggers) > 0 {
		rules.Enabled = make([]model.TriggerKind, 0, len(c.Triggers))
		for _, kind := range c.Triggers {
			switch k := model.TriggerKind(kind); k {
			case model.TriggerPullRequest, model.TriggerComment:
				rules.Enabled = append(rules.Enabled, k)
			default:
				return nil, goerr.New("unknown trigger kind", goerr.V("kind", kind))
			}
		}
	}
	if c.Phrase != "" {
		rules.Phrase = c.Phrase
	}
	if len(c.AllowedUsers) > 0 {
		rules.AllowedUsers = c.AllowedUsers
	}

	if c.RulesFile == "" {
		return rules, nil
	}

	raw, err := os.ReadFile(c.RulesFile)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read rules file",
			goerr.V("path", c.RulesFile))
	}

	var file rulesFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse rules file",
			goerr.V("path", c.RulesFile))
	}

	if file.Enabled != nil {
		rules.Enabled = file.Enabled
	}
	if file.PullActions != nil {
		rules.PullActions = file.PullActions
	}
	if file.CommentActions != nil {
		rules.CommentActions = file.CommentActions
	}
	if file.Phrase != nil {
		rules.Phrase = *file.Phrase
	}
	if file.AllowedUsers != nil {
		rules.AllowedUsers = file.AllowedUsers
	}

	return rules, nil
}
