package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/labelmesh/pkg/cli/config"
	"github.com/m-mizutani/labelmesh/pkg/domain/types"
	"github.com/m-mizutani/labelmesh/pkg/infra"
	"github.com/m-mizutani/labelmesh/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func reposCommand() *cli.Command {
	var (
		github config.GitHub
		mesh   config.Mesh
	)
	return &cli.Command{
		Name:  "repos",
		Usage: "List repositories accessible with the configured token",
		Flags: slice.Flatten(
			github.Flags(),
			mesh.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := newUseCase(&github, &mesh)
			if err != nil {
				return err
			}

			repos, err := uc.ListRepositories(ctx)
			if err != nil {
				return err
			}
			for _, repo := range repos {
				fmt.Println(repo)
			}
			return nil
		},
	}
}

func labelsCommand() *cli.Command {
	var (
		github config.GitHub
		mesh   config.Mesh
	)
	return &cli.Command{
		Name:      "labels",
		Usage:     "List labels of a repository",
		ArgsUsage: "[repository]",
		Flags: slice.Flatten(
			github.Flags(),
			mesh.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			repo := types.RepoSlug(c.Args().First())
			if repo == "" {
				detected, err := detectRepoSlug(".")
				if err != nil {
					return err
				}
				repo = detected
			}

			uc, err := newUseCase(&github, &mesh)
			if err != nil {
				return err
			}

			labels, err := uc.ListLabels(ctx, repo)
			if err != nil {
				return err
			}

			names := make([]string, 0, len(labels))
			for name := range labels {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("#%s %s\n", labels[name], name)
			}
			return nil
		},
	}
}

func newUseCase(github *config.GitHub, mesh *config.Mesh) (*usecase.UseCase, error) {
	if err := mesh.Load(); err != nil {
		return nil, err
	}
	ghClient, err := github.NewClient(mesh.GitHub.Token)
	if err != nil {
		return nil, err
	}
	return usecase.New(infra.New(infra.WithLabelAPI(ghClient))), nil
}
