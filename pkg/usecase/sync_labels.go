package usecase

import (
	"context"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/labelmesh/pkg/domain/model"
	"github.com/m-mizutani/labelmesh/pkg/domain/types"
	"github.com/m-mizutani/labelmesh/pkg/utils/logging"
)

// SyncLabels reconciles every target repository against the desired
// label set. Repositories are processed in order; a failure in one
// repository or one label operation is reported and counted but does
// not stop the run.
func (x *UseCase) SyncLabels(ctx context.Context, input *model.SyncLabelsInput) (*model.SyncResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	result := &model.SyncResult{
		Repos:  len(input.Repos),
		Status: types.SyncStatusSuccess,
	}

	for _, repo := range input.Repos {
		result.Errors += x.syncRepo(ctx, repo, input)
	}

	if result.Errors > 0 {
		result.Status = types.SyncStatusError
	}
	x.sink.Summary(result)

	return result, nil
}

func (x *UseCase) syncRepo(ctx context.Context, repo types.RepoSlug, input *model.SyncLabelsInput) int {
	current, err := x.clients.LabelAPI().ListLabels(ctx, repo)
	if err != nil {
		logging.From(ctx).Error("failed to list labels", "repo", repo, "error", err)
		x.sink.Event(&model.SyncEvent{
			Repo:   repo,
			Action: model.SyncActionFetch,
			Result: model.SyncOutcomeError,
			Err:    err,
		})
		return 1
	}

	plan := model.Diff(current, input.Desired, input.Policy)

	errors := 0
	errors += x.applyStep(ctx, repo, model.SyncActionCreate, plan.Create, input.DryRun)
	errors += x.applyStep(ctx, repo, model.SyncActionUpdate, plan.Update, input.DryRun)
	errors += x.applyStep(ctx, repo, model.SyncActionDelete, plan.Delete, input.DryRun)
	return errors
}

// applyStep executes one class of operations in deterministic order,
// keyed by the label name as it currently exists on the remote side.
func (x *UseCase) applyStep(ctx context.Context, repo types.RepoSlug, action model.SyncAction, labels map[string]model.Label, dryRun bool) int {
	names := make([]string, 0, len(labels))
	for name := range labels {
		names = append(names, name)
	}
	sort.Strings(names)

	errors := 0
	for _, name := range names {
		label := labels[name]
		ev := &model.SyncEvent{
			Repo:   repo,
			Action: action,
			Result: model.SyncOutcomeSuccess,
			Label:  label,
		}

		if dryRun {
			ev.Result = model.SyncOutcomeDryRun
		} else if err := x.applyLabel(ctx, repo, action, name, label); err != nil {
			logging.From(ctx).Error("failed to apply label change",
				"repo", repo, "action", action, "label", label, "error", err)
			ev.Result = model.SyncOutcomeError
			ev.Err = err
			errors++
		}
		x.sink.Event(ev)
	}
	return errors
}

func (x *UseCase) applyLabel(ctx context.Context, repo types.RepoSlug, action model.SyncAction, currentName string, label model.Label) error {
	api := x.clients.LabelAPI()

	switch action {
	case model.SyncActionCreate:
		return api.CreateLabel(ctx, repo, label)
	case model.SyncActionUpdate:
		return api.UpdateLabel(ctx, repo, label, currentName)
	case model.SyncActionDelete:
		return api.DeleteLabel(ctx, repo, label.Name)
	default:
		return goerr.New("unknown sync action", goerr.V("action", action))
	}
}
