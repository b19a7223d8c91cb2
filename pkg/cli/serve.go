package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/labelmesh/pkg/cli/config"
	"github.com/m-mizutani/labelmesh/pkg/controller/server"
	"github.com/m-mizutani/labelmesh/pkg/domain/types"
	"github.com/m-mizutani/labelmesh/pkg/infra"
	"github.com/m-mizutani/labelmesh/pkg/repository/memory"
	"github.com/m-mizutani/labelmesh/pkg/usecase"
	"github.com/m-mizutani/labelmesh/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr          string
		webhookSecret types.WebhookSecret

		github config.GitHub
		mesh   config.Mesh
		sentry config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:5000",
			Sources:     cli.EnvVars("LABELMESH_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "webhook-secret",
			Usage:       "Secret for webhook signature verification",
			Sources:     cli.EnvVars("LABELMESH_WEBHOOK_SECRET"),
			Destination: (*string)(&webhookSecret),
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run the webhook relay server",
		Flags: slice.Flatten(
			serveFlags,
			github.Flags(),
			mesh.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := mesh.Load(); err != nil {
				return err
			}

			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("GitHub", github),
				slog.Any("Mesh", mesh),
				slog.Any("Sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			if len(mesh.Repos) == 0 {
				return goerr.Wrap(types.ErrInvalidConfig, "no repositories configured for replication")
			}

			secret := webhookSecret
			if secret == "" {
				secret = mesh.GitHub.WebhookSecret
			}
			if secret == "" {
				// Without a secret the signature check would be skipped
				// and anyone could inject label changes into the mesh.
				return goerr.Wrap(types.ErrInvalidConfig, "no webhook secret has been provided")
			}

			ghClient, err := github.NewClient(mesh.GitHub.Token)
			if err != nil {
				return err
			}

			clients := infra.New(infra.WithLabelAPI(ghClient))
			uc := usecase.New(clients,
				usecase.WithReplicaSet(mesh.Repos),
				usecase.WithEchoGuard(memory.New()),
			)
			s := server.New(uc,
				server.WithWebhookSecret(secret),
				server.WithReplicaSet(mesh.Repos),
			)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
