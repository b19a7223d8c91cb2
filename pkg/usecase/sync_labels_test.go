package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/labelmesh/pkg/domain/mock"
	"github.com/m-mizutani/labelmesh/pkg/domain/model"
	"github.com/m-mizutani/labelmesh/pkg/domain/types"
	"github.com/m-mizutani/labelmesh/pkg/infra"
	"github.com/m-mizutani/labelmesh/pkg/usecase"
)

func newLabelAPIMock(stores map[types.RepoSlug]model.LabelSet) *mock.LabelAPIMock {
	return &mock.LabelAPIMock{
		ListLabelsFunc: func(ctx context.Context, repo types.RepoSlug) (model.LabelSet, error) {
			labels, ok := stores[repo]
			if !ok {
				return nil, types.ErrNotFound
			}
			return labels.Clone(), nil
		},
		CreateLabelFunc: func(ctx context.Context, repo types.RepoSlug, label model.Label) error {
			stores[repo][label.Name] = label.Color
			return nil
		},
		UpdateLabelFunc: func(ctx context.Context, repo types.RepoSlug, label model.Label, prevName string) error {
			delete(stores[repo], prevName)
			stores[repo][label.Name] = label.Color
			return nil
		},
		DeleteLabelFunc: func(ctx context.Context, repo types.RepoSlug, name string) error {
			delete(stores[repo], name)
			return nil
		},
	}
}

func TestSyncLabels(t *testing.T) {
	desired := model.LabelSet{
		"bug":     "ff0000",
		"feature": "00ff00",
	}

	t.Run("converges all repositories", func(t *testing.T) {
		stores := map[types.RepoSlug]model.LabelSet{
			"blue/python": {"bug": "cccccc", "stale": "eeeeee"},
			"blue/ruby":   {},
		}
		apiMock := newLabelAPIMock(stores)
		uc := usecase.New(infra.New(infra.WithLabelAPI(apiMock)))

		result := gt.R1(uc.SyncLabels(context.Background(), &model.SyncLabelsInput{
			Repos:   []types.RepoSlug{"blue/python", "blue/ruby"},
			Desired: desired,
			Policy:  types.PolicyReplace,
		})).NoError(t)

		gt.V(t, result.Status).Equal(types.SyncStatusSuccess)
		gt.V(t, result.Repos).Equal(2)
		gt.V(t, result.Errors).Equal(0)
		gt.V(t, stores["blue/python"]).Equal(desired)
		gt.V(t, stores["blue/ruby"]).Equal(desired)
	})

	t.Run("update policy keeps extra labels", func(t *testing.T) {
		stores := map[types.RepoSlug]model.LabelSet{
			"blue/python": {"stale": "eeeeee"},
		}
		apiMock := newLabelAPIMock(stores)
		uc := usecase.New(infra.New(infra.WithLabelAPI(apiMock)))

		gt.R1(uc.SyncLabels(context.Background(), &model.SyncLabelsInput{
			Repos:   []types.RepoSlug{"blue/python"},
			Desired: desired,
			Policy:  types.PolicyUpdate,
		})).NoError(t)

		gt.V(t, stores["blue/python"]).Equal(model.LabelSet{
			"bug":     "ff0000",
			"feature": "00ff00",
			"stale":   "eeeeee",
		})
		gt.A(t, apiMock.DeleteLabelCalls()).Length(0)
	})

	t.Run("dry run performs no mutation", func(t *testing.T) {
		stores := map[types.RepoSlug]model.LabelSet{
			"blue/python": {"bug": "cccccc", "stale": "eeeeee"},
		}
		apiMock := newLabelAPIMock(stores)
		uc := usecase.New(infra.New(infra.WithLabelAPI(apiMock)))

		result := gt.R1(uc.SyncLabels(context.Background(), &model.SyncLabelsInput{
			Repos:   []types.RepoSlug{"blue/python"},
			Desired: desired,
			Policy:  types.PolicyReplace,
			DryRun:  true,
		})).NoError(t)

		gt.V(t, result.Status).Equal(types.SyncStatusSuccess)
		gt.V(t, stores["blue/python"]).Equal(model.LabelSet{"bug": "cccccc", "stale": "eeeeee"})
		gt.A(t, apiMock.CreateLabelCalls()).Length(0)
		gt.A(t, apiMock.UpdateLabelCalls()).Length(0)
		gt.A(t, apiMock.DeleteLabelCalls()).Length(0)
	})

	t.Run("unreachable repository does not abort the run", func(t *testing.T) {
		stores := map[types.RepoSlug]model.LabelSet{
			"blue/ruby": {},
		}
		apiMock := newLabelAPIMock(stores)
		uc := usecase.New(infra.New(infra.WithLabelAPI(apiMock)))

		result := gt.R1(uc.SyncLabels(context.Background(), &model.SyncLabelsInput{
			Repos:   []types.RepoSlug{"blue/missing", "blue/ruby"},
			Desired: desired,
			Policy:  types.PolicyUpdate,
		})).NoError(t)

		gt.V(t, result.Status).Equal(types.SyncStatusError)
		gt.V(t, result.Errors).Equal(1)
		gt.V(t, stores["blue/ruby"]).Equal(desired)
	})

	t.Run("failed label operation is counted and skipped", func(t *testing.T) {
		stores := map[types.RepoSlug]model.LabelSet{
			"blue/python": {},
		}
		apiMock := newLabelAPIMock(stores)
		apiMock.CreateLabelFunc = func(ctx context.Context, repo types.RepoSlug, label model.Label) error {
			if label.Name == "bug" {
				return types.ErrValidationFailed
			}
			stores[repo][label.Name] = label.Color
			return nil
		}
		uc := usecase.New(infra.New(infra.WithLabelAPI(apiMock)))

		result := gt.R1(uc.SyncLabels(context.Background(), &model.SyncLabelsInput{
			Repos:   []types.RepoSlug{"blue/python"},
			Desired: desired,
			Policy:  types.PolicyUpdate,
		})).NoError(t)

		gt.V(t, result.Status).Equal(types.SyncStatusError)
		gt.V(t, result.Errors).Equal(1)
		gt.V(t, stores["blue/python"]).Equal(model.LabelSet{"feature": "00ff00"})
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithLabelAPI(&mock.LabelAPIMock{})))

		_, err := uc.SyncLabels(context.Background(), &model.SyncLabelsInput{
			Repos:   []types.RepoSlug{"blue/python"},
			Desired: desired,
			Policy:  "prune",
		})
		gt.Error(t, err).Is(types.ErrInvalidOption)
	})
}

func TestSyncLabelsCaseOnlyRename(t *testing.T) {
	stores := map[types.RepoSlug]model.LabelSet{
		"blue/python": {"BUG": "ff0000"},
	}
	apiMock := newLabelAPIMock(stores)
	uc := usecase.New(infra.New(infra.WithLabelAPI(apiMock)))

	gt.R1(uc.SyncLabels(context.Background(), &model.SyncLabelsInput{
		Repos:   []types.RepoSlug{"blue/python"},
		Desired: model.LabelSet{"bug": "ff0000"},
		Policy:  types.PolicyUpdate,
	})).NoError(t)

	calls := apiMock.UpdateLabelCalls()
	gt.A(t, calls).Length(1).At(0, func(t testing.TB, call struct {
		Ctx      context.Context
		Repo     types.RepoSlug
		Label    model.Label
		PrevName string
	}) {
		gt.V(t, call.PrevName).Equal("BUG")
		gt.V(t, call.Label.Name).Equal("bug")
	})
	gt.V(t, stores["blue/python"]).Equal(model.LabelSet{"bug": "ff0000"})
}
