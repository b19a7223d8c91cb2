package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/labelmesh/pkg/domain/model"
	"github.com/m-mizutani/labelmesh/pkg/domain/types"
)

type UseCase interface {
	// SyncLabels runs one reconciliation over the given repositories.
	// Per-repository and per-label failures are reported through the
	// event sink and counted in the result; they never abort the run.
	SyncLabels(ctx context.Context, input *model.SyncLabelsInput) (*model.SyncResult, error)

	// RelayLabelEvent replays an inbound notification to every other
	// replica-set member, suppressing echoes of our own propagation.
	RelayLabelEvent(ctx context.Context, ev *model.LabelEvent) error

	// ResolveDesiredLabels resolves the label specification: the
	// template repository's current labels when one is given, the
	// inline name-to-color mapping otherwise.
	ResolveDesiredLabels(ctx context.Context, templateRepo types.RepoSlug, inline model.LabelSet) (model.LabelSet, error)

	ListRepositories(ctx context.Context) ([]types.RepoSlug, error)
	ListLabels(ctx context.Context, repo types.RepoSlug) (model.LabelSet, error)
}
