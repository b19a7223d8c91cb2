package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . LabelAPI

import (
	"context"

	"github.com/m-mizutani/labelmesh/pkg/domain/model"
	"github.com/m-mizutani/labelmesh/pkg/domain/types"
)

// LabelAPI is the remote label management service. Mutating calls fail
// with an error wrapping one of the types.Err* sentinels of the
// upstream error taxonomy.
type LabelAPI interface {
	ListRepositories(ctx context.Context) ([]types.RepoSlug, error)
	ListLabels(ctx context.Context, repo types.RepoSlug) (model.LabelSet, error)
	CreateLabel(ctx context.Context, repo types.RepoSlug, label model.Label) error

	// UpdateLabel edits the label currently named prevName (or
	// label.Name when prevName is empty) to the given name and color.
	UpdateLabel(ctx context.Context, repo types.RepoSlug, label model.Label, prevName string) error
	DeleteLabel(ctx context.Context, repo types.RepoSlug, name string) error
}
