package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/buildgate/buildgate/pkg/cli/config"
	controller "github.com/buildgate/buildgate/pkg/controller/http"
	"github.com/buildgate/buildgate/pkg/domain/interfaces"
	"github.com/buildgate/buildgate/pkg/infra/codebuild"
	githubinfra "github.com/buildgate/buildgate/pkg/infra/github"
	slackinfra "github.com/buildgate/buildgate/pkg/infra/slack"
	"github.com/buildgate/buildgate/pkg/infra/ssm"
	"github.com/buildgate/buildgate/pkg/usecase"
)

func cmdServe() *cli.Command {
	var (
		serverCfg  config.Server
		githubCfg  config.GitHub
		awsCfg     config.AWS
		buildCfg   config.Build
		watcherCfg config.Watcher
		slackCfg   config.Slack
		sentryCfg  config.Sentry
	)

	var flags []cli.Flag
	flags = append(flags, serverCfg.Flags()...)
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, awsCfg.Flags()...)
	flags = append(flags, buildCfg.Flags()...)
	flags = append(flags, watcherCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting buildgate server",
				slog.String("addr", serverCfg.Addr),
				slog.String("project", buildCfg.Project),
				slog.String("region", awsCfg.Region),
			)

			if err := sentryCfg.Configure(); err != nil {
				return err
			}
			defer sentry.Flush(2 * time.Second)

			rules, err := buildCfg.Rules()
			if err != nil {
				return err
			}

			awsConf, err := awsCfg.Load(ctx)
			if err != nil {
				return err
			}

			// Infrastructure clients
			store := ssm.New(awsConf)
			creds := githubinfra.NewCredentialSource(store, githubCfg.UsernameParam, githubCfg.TokenParam)
			github := githubinfra.NewClient(creds)
			builds := codebuild.New(awsConf)

			var notifier interfaces.Notifier
			if slackCfg.WebhookURL != "" {
				notifier = slackinfra.New(slackCfg.WebhookURL, awsCfg.Region)
			}

			// Use cases
			triggerCfg := usecase.TriggerConfig{
				Project:       buildCfg.Project,
				Region:        awsCfg.Region,
				StatusContext: githubCfg.StatusContext,
			}
			verifier := usecase.NewVerifier(store, githubCfg.WebhookSecretParam)
			classifier := usecase.NewClassifier(github, rules)
			trigger := usecase.NewTrigger(github, builds, triggerCfg)
			poller := usecase.NewPoller(builds)
			syncer := usecase.NewSyncer(github, triggerCfg)
			watcher := usecase.NewWatcher(poller, syncer, notifier, watcherCfg.Interval)
			webhookUC := usecase.NewWebhook(verifier, classifier, trigger, watcher)

			// Create HTTP server with options
			server, err := controller.NewServer(
				ctx,
				webhookUC,
				controller.WithAddr(serverCfg.Addr),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
