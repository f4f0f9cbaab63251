package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

// Watcher holds build watcher configuration
type Watcher struct {
	Interval time.Duration
}

// Flags returns CLI flags for watcher configuration
func (c *Watcher) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "watch-interval",
			Usage:       "Interval between build status polls",
			Value:       30 * time.Second,
			Destination: &c.Interval,
			Sources:     cli.EnvVars("BUILDGATE_WATCH_INTERVAL"),
		},
	}
}
