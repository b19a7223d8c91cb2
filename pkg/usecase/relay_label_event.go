package usecase

import (
	"context"

	"github.com/m-mizutani/labelmesh/pkg/domain/model"
	"github.com/m-mizutani/labelmesh/pkg/domain/types"
	"github.com/m-mizutani/labelmesh/pkg/utils/logging"
)

// RelayLabelEvent replays an inbound label change to every other
// repository in the replica set. Before propagating, the guard is
// consulted: a notification structurally matching a change we recently
// applied to that repository is an echo of our own propagation and is
// dropped. Propagation is best effort; failures on individual peers
// are logged and do not fail the request.
func (x *UseCase) RelayLabelEvent(ctx context.Context, ev *model.LabelEvent) error {
	if err := ev.Validate(); err != nil {
		return err
	}

	x.guard.PurgeExpired(ctx)

	if _, ok := x.replicaSet[ev.Repo]; !ok {
		logging.From(ctx).Info("ignoring label event from repository outside the replica set", "repo", ev.Repo)
		return nil
	}

	now := logging.CtxTime(ctx)
	rec := model.NewChangeRecord(ev, now)

	if x.guard.Consume(ctx, ev.Repo, rec) {
		logging.From(ctx).Debug("suppressed echo of own propagation",
			"repo", ev.Repo, "action", ev.Action, "label", ev.Label.Name)
		return nil
	}

	for repo := range x.replicaSet {
		if repo == ev.Repo {
			continue
		}

		x.guard.Register(ctx, repo, rec)
		if err := x.propagate(ctx, repo, ev); err != nil {
			logging.From(ctx).Error("failed to propagate label change",
				"repo", repo, "action", ev.Action, "label", ev.Label.Name, "error", err)
		}
	}

	return nil
}

func (x *UseCase) propagate(ctx context.Context, repo types.RepoSlug, ev *model.LabelEvent) error {
	api := x.clients.LabelAPI()

	switch ev.Action {
	case types.LabelCreated:
		return api.CreateLabel(ctx, repo, ev.Label)
	case types.LabelDeleted:
		return api.DeleteLabel(ctx, repo, ev.Label.Name)
	default:
		prevName := ev.PrevName
		if prevName == "" {
			prevName = ev.Label.Name
		}
		return api.UpdateLabel(ctx, repo, ev.Label, prevName)
	}
}
