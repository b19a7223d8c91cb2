package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/labelmesh/pkg/domain/mock"
	"github.com/m-mizutani/labelmesh/pkg/domain/model"
	"github.com/m-mizutani/labelmesh/pkg/domain/types"
	"github.com/m-mizutani/labelmesh/pkg/infra"
	"github.com/m-mizutani/labelmesh/pkg/usecase"
	"github.com/m-mizutani/labelmesh/pkg/utils/logging"
)

var replicaSet = []types.RepoSlug{"blue/python", "blue/ruby", "blue/golang"}

func newRelayMock() *mock.LabelAPIMock {
	return &mock.LabelAPIMock{
		CreateLabelFunc: func(ctx context.Context, repo types.RepoSlug, label model.Label) error {
			return nil
		},
		UpdateLabelFunc: func(ctx context.Context, repo types.RepoSlug, label model.Label, prevName string) error {
			return nil
		},
		DeleteLabelFunc: func(ctx context.Context, repo types.RepoSlug, name string) error {
			return nil
		},
	}
}

func TestRelayLabelEvent(t *testing.T) {
	created := func(repo types.RepoSlug) *model.LabelEvent {
		return &model.LabelEvent{
			Action: types.LabelCreated,
			Repo:   repo,
			Label:  model.Label{Name: "bug", Color: "ff0000"},
		}
	}

	t.Run("propagates to every peer once", func(t *testing.T) {
		apiMock := newRelayMock()
		uc := usecase.New(infra.New(infra.WithLabelAPI(apiMock)),
			usecase.WithReplicaSet(replicaSet),
		)
		ctx := context.Background()

		gt.NoError(t, uc.RelayLabelEvent(ctx, created("blue/python")))

		calls := apiMock.CreateLabelCalls()
		gt.A(t, calls).Length(2)
		targets := map[types.RepoSlug]int{}
		for _, call := range calls {
			targets[call.Repo]++
			gt.V(t, call.Label).Equal(model.Label{Name: "bug", Color: "ff0000"})
		}
		gt.V(t, targets).Equal(map[types.RepoSlug]int{"blue/ruby": 1, "blue/golang": 1})

		// Echoes of our own propagation come back from both peers and
		// must not trigger further propagation.
		gt.NoError(t, uc.RelayLabelEvent(ctx, created("blue/ruby")))
		gt.NoError(t, uc.RelayLabelEvent(ctx, created("blue/golang")))
		gt.A(t, apiMock.CreateLabelCalls()).Length(2)
	})

	t.Run("second genuine change propagates again", func(t *testing.T) {
		apiMock := newRelayMock()
		uc := usecase.New(infra.New(infra.WithLabelAPI(apiMock)),
			usecase.WithReplicaSet(replicaSet),
		)
		ctx := context.Background()

		gt.NoError(t, uc.RelayLabelEvent(ctx, created("blue/python")))
		gt.NoError(t, uc.RelayLabelEvent(ctx, created("blue/ruby")))
		gt.A(t, apiMock.CreateLabelCalls()).Length(2)

		// A user creating the same label again on a peer is not an echo
		// anymore; the first arrival consumed the registered record.
		gt.NoError(t, uc.RelayLabelEvent(ctx, created("blue/ruby")))
		gt.A(t, apiMock.CreateLabelCalls()).Length(4)
	})

	t.Run("expired suppression no longer blocks", func(t *testing.T) {
		apiMock := newRelayMock()
		uc := usecase.New(infra.New(infra.WithLabelAPI(apiMock)),
			usecase.WithReplicaSet(replicaSet),
		)

		base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		ctx := logging.CtxWithTime(context.Background(), func() time.Time { return base })
		gt.NoError(t, uc.RelayLabelEvent(ctx, created("blue/python")))
		gt.A(t, apiMock.CreateLabelCalls()).Length(2)

		late := logging.CtxWithTime(context.Background(), func() time.Time {
			return base.Add(model.EchoWindow)
		})
		gt.NoError(t, uc.RelayLabelEvent(late, created("blue/ruby")))
		gt.A(t, apiMock.CreateLabelCalls()).Length(4)
	})

	t.Run("structurally different change is not suppressed", func(t *testing.T) {
		apiMock := newRelayMock()
		uc := usecase.New(infra.New(infra.WithLabelAPI(apiMock)),
			usecase.WithReplicaSet(replicaSet),
		)
		ctx := context.Background()

		gt.NoError(t, uc.RelayLabelEvent(ctx, created("blue/python")))
		gt.A(t, apiMock.CreateLabelCalls()).Length(2)

		gt.NoError(t, uc.RelayLabelEvent(ctx, &model.LabelEvent{
			Action: types.LabelCreated,
			Repo:   "blue/ruby",
			Label:  model.Label{Name: "bug", Color: "00ff00"},
		}))
		gt.A(t, apiMock.CreateLabelCalls()).Length(4)
	})

	t.Run("repository outside the replica set is ignored", func(t *testing.T) {
		apiMock := newRelayMock()
		uc := usecase.New(infra.New(infra.WithLabelAPI(apiMock)),
			usecase.WithReplicaSet(replicaSet),
		)

		gt.NoError(t, uc.RelayLabelEvent(context.Background(), created("stranger/repo")))
		gt.A(t, apiMock.CreateLabelCalls()).Length(0)
	})

	t.Run("rename propagates with previous name", func(t *testing.T) {
		apiMock := newRelayMock()
		uc := usecase.New(infra.New(infra.WithLabelAPI(apiMock)),
			usecase.WithReplicaSet([]types.RepoSlug{"blue/python", "blue/ruby"}),
		)

		gt.NoError(t, uc.RelayLabelEvent(context.Background(), &model.LabelEvent{
			Action:   types.LabelEdited,
			Repo:     "blue/python",
			Label:    model.Label{Name: "bug", Color: "ff0000"},
			PrevName: "defect",
		}))

		calls := apiMock.UpdateLabelCalls()
		gt.A(t, calls).Length(1).At(0, func(t testing.TB, call struct {
			Ctx      context.Context
			Repo     types.RepoSlug
			Label    model.Label
			PrevName string
		}) {
			gt.V(t, call.Repo).Equal(types.RepoSlug("blue/ruby"))
			gt.V(t, call.PrevName).Equal("defect")
		})
	})

	t.Run("deletion propagates to peers", func(t *testing.T) {
		apiMock := newRelayMock()
		uc := usecase.New(infra.New(infra.WithLabelAPI(apiMock)),
			usecase.WithReplicaSet([]types.RepoSlug{"blue/python", "blue/ruby"}),
		)

		gt.NoError(t, uc.RelayLabelEvent(context.Background(), &model.LabelEvent{
			Action: types.LabelDeleted,
			Repo:   "blue/python",
			Label:  model.Label{Name: "stale"},
		}))

		calls := apiMock.DeleteLabelCalls()
		gt.A(t, calls).Length(1).At(0, func(t testing.TB, call struct {
			Ctx  context.Context
			Repo types.RepoSlug
			Name string
		}) {
			gt.V(t, call.Repo).Equal(types.RepoSlug("blue/ruby"))
			gt.V(t, call.Name).Equal("stale")
		})
	})

	t.Run("propagation failure does not fail the request", func(t *testing.T) {
		apiMock := newRelayMock()
		apiMock.CreateLabelFunc = func(ctx context.Context, repo types.RepoSlug, label model.Label) error {
			return types.ErrUpstream
		}
		uc := usecase.New(infra.New(infra.WithLabelAPI(apiMock)),
			usecase.WithReplicaSet(replicaSet),
		)

		gt.NoError(t, uc.RelayLabelEvent(context.Background(), created("blue/python")))
		gt.A(t, apiMock.CreateLabelCalls()).Length(2)
	})

	t.Run("rejects invalid event", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithLabelAPI(newRelayMock())),
			usecase.WithReplicaSet(replicaSet),
		)

		err := uc.RelayLabelEvent(context.Background(), &model.LabelEvent{
			Action: "renamed",
			Repo:   "blue/python",
			Label:  model.Label{Name: "bug"},
		})
		gt.Error(t, err).Is(types.ErrInvalidOption)
	})
}
