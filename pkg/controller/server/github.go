package server

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/labelmesh/pkg/domain/interfaces"
	"github.com/m-mizutani/labelmesh/pkg/domain/model"
	"github.com/m-mizutani/labelmesh/pkg/domain/types"
	"github.com/m-mizutani/labelmesh/pkg/utils/logging"
)

// labelEventPayload is the subset of the webhook body the relay needs.
// github.LabelEvent drops changes.name.from, which carries the previous
// name of a renamed label, so the payload is decoded directly.
type labelEventPayload struct {
	Action string `json:"action"`
	Label  struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	} `json:"label"`
	Repository struct {
		FullName string `json:"full_name"`
	} `json:"repository"`
	Changes struct {
		Name struct {
			From string `json:"from"`
		} `json:"name"`
	} `json:"changes"`
}

// handleGitHubEvent validates, parses and relays one webhook delivery.
// It returns the HTTP status code to respond with; the error is nil
// exactly when the code is 200.
func handleGitHubEvent(r *http.Request, uc interfaces.UseCase, cfg *config) (int, error) {
	ctx := r.Context()

	payload, err := github.ValidatePayload(r, []byte(cfg.secret))
	if err != nil {
		return http.StatusUnauthorized, goerr.Wrap(err, "validating payload signature")
	}

	switch evType := github.WebHookType(r); evType {
	case "ping":
		logging.From(ctx).Info("received ping event")
		return http.StatusOK, nil

	case "label":
		// handled below

	default:
		return http.StatusBadRequest, goerr.New("unsupported event type", goerr.V("event", evType))
	}

	var body labelEventPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return http.StatusBadRequest, goerr.Wrap(err, "parsing label event payload")
	}

	ev, err := parseLabelEvent(&body)
	if err != nil {
		return http.StatusBadRequest, err
	}

	if _, ok := cfg.replicaSet[ev.Repo]; !ok {
		return http.StatusBadRequest, goerr.New("repository is not configured for replication",
			goerr.V("repo", ev.Repo))
	}

	logging.From(ctx).Info("received label event",
		slog.Any("action", ev.Action),
		slog.Any("repo", ev.Repo),
		slog.String("label", ev.Label.Name),
	)

	if err := uc.RelayLabelEvent(ctx, ev); err != nil {
		return http.StatusBadRequest, err
	}

	return http.StatusOK, nil
}

func parseLabelEvent(body *labelEventPayload) (*model.LabelEvent, error) {
	ev := &model.LabelEvent{
		Action: types.LabelAction(body.Action),
		Repo:   types.RepoSlug(body.Repository.FullName),
		Label: model.Label{
			Name:  body.Label.Name,
			Color: body.Label.Color,
		},
		PrevName: body.Changes.Name.From,
	}
	if ev.PrevName == ev.Label.Name {
		ev.PrevName = ""
	}

	if err := ev.Validate(); err != nil {
		return nil, err
	}
	return ev, nil
}
