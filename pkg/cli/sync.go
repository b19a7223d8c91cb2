package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/labelmesh/pkg/cli/config"
	"github.com/m-mizutani/labelmesh/pkg/domain/model"
	"github.com/m-mizutani/labelmesh/pkg/domain/types"
	"github.com/m-mizutani/labelmesh/pkg/infra"
	"github.com/m-mizutani/labelmesh/pkg/reporter"
	"github.com/m-mizutani/labelmesh/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func syncCommand() *cli.Command {
	var (
		dryRun       bool
		allRepos     bool
		templateRepo string
		output       string

		github config.GitHub
		mesh   config.Mesh
	)
	syncFlags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "Report planned changes without applying them",
			Aliases:     []string{"d"},
			Sources:     cli.EnvVars("LABELMESH_DRY_RUN"),
			Destination: &dryRun,
		},
		&cli.BoolFlag{
			Name:        "all-repos",
			Usage:       "Target all accessible repositories instead of the configured ones",
			Aliases:     []string{"a"},
			Destination: &allRepos,
		},
		&cli.StringFlag{
			Name:        "template-repo",
			Usage:       "Repository whose current labels become the specification",
			Aliases:     []string{"r"},
			Sources:     cli.EnvVars("LABELMESH_TEMPLATE_REPO"),
			Destination: &templateRepo,
		},
		&cli.StringFlag{
			Name:        "output",
			Usage:       "Output mode [normal|verbose|quiet]",
			Sources:     cli.EnvVars("LABELMESH_OUTPUT"),
			Destination: &output,
			Value:       string(reporter.ModeNormal),
		},
	}

	return &cli.Command{
		Name:      "sync",
		Usage:     "Reconcile repository labels with the specification",
		ArgsUsage: "[update|replace]",
		Flags: slice.Flatten(
			syncFlags,
			github.Flags(),
			mesh.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			policy := types.PolicyUpdate
			if arg := c.Args().First(); arg != "" {
				policy = types.SyncPolicy(arg)
			}
			if err := policy.Validate(); err != nil {
				return err
			}

			if err := mesh.Load(); err != nil {
				return err
			}

			sink, err := reporter.New(reporter.Mode(output))
			if err != nil {
				return err
			}

			ghClient, err := github.NewClient(mesh.GitHub.Token)
			if err != nil {
				return err
			}

			clients := infra.New(infra.WithLabelAPI(ghClient))
			uc := usecase.New(clients, usecase.WithEventSink(sink))

			// template flag wins over the template repository and the
			// inline labels from the config file
			template := types.RepoSlug(templateRepo)
			if template == "" {
				template = mesh.TemplateRepo
			}
			desired, err := uc.ResolveDesiredLabels(ctx, template, model.LabelSet(mesh.Labels))
			if err != nil {
				return err
			}

			repos := mesh.Repos
			if allRepos {
				repos, err = uc.ListRepositories(ctx)
				if err != nil {
					return err
				}
			}

			result, err := uc.SyncLabels(ctx, &model.SyncLabelsInput{
				Repos:   repos,
				Desired: desired,
				Policy:  policy,
				DryRun:  dryRun,
			})
			if err != nil {
				return err
			}

			if result.Status == types.SyncStatusError {
				return goerr.New("label reconciliation finished with errors",
					goerr.V("errors", result.Errors))
			}
			return nil
		},
	}
}
