package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/labelmesh/pkg/domain/model"
	"github.com/m-mizutani/labelmesh/pkg/domain/types"
)

// ResolveDesiredLabels resolves the effective label specification. A
// template repository takes precedence: its current labels become the
// specification. Otherwise the inline mapping is used as given.
func (x *UseCase) ResolveDesiredLabels(ctx context.Context, templateRepo types.RepoSlug, inline model.LabelSet) (model.LabelSet, error) {
	if templateRepo != "" {
		if err := templateRepo.Validate(); err != nil {
			return nil, err
		}

		labels, err := x.clients.LabelAPI().ListLabels(ctx, templateRepo)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read labels of template repository", goerr.V("repo", templateRepo))
		}
		return labels, nil
	}

	if len(inline) == 0 {
		return nil, goerr.Wrap(types.ErrInvalidConfig, "no label specification has been found")
	}
	return inline.Clone(), nil
}

func (x *UseCase) ListRepositories(ctx context.Context) ([]types.RepoSlug, error) {
	return x.clients.LabelAPI().ListRepositories(ctx)
}

func (x *UseCase) ListLabels(ctx context.Context, repo types.RepoSlug) (model.LabelSet, error) {
	if err := repo.Validate(); err != nil {
		return nil, err
	}
	return x.clients.LabelAPI().ListLabels(ctx, repo)
}
