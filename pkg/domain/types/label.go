package types

import (
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

type (
	GitHubToken   string
	WebhookSecret string
	RepoSlug      string
)

// SyncPolicy selects how the reconciliation treats labels that exist on
// the remote side but not in the specification.
type SyncPolicy string

const (
	// PolicyUpdate creates and updates labels, never deletes.
	PolicyUpdate SyncPolicy = "update"
	// PolicyReplace additionally deletes labels absent from the specification.
	PolicyReplace SyncPolicy = "replace"
)

func (x SyncPolicy) Validate() error {
	switch x {
	case PolicyUpdate, PolicyReplace:
		return nil
	default:
		return goerr.Wrap(ErrInvalidOption, "invalid sync policy, should be 'update' or 'replace'", goerr.V("value", x))
	}
}

type SyncStatus string

const (
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusError   SyncStatus = "error"
)

// LabelAction is the action field of a GitHub label webhook event.
type LabelAction string

const (
	LabelCreated LabelAction = "created"
	LabelDeleted LabelAction = "deleted"
	LabelEdited  LabelAction = "edited"
)

func (x LabelAction) Validate() error {
	switch x {
	case LabelCreated, LabelDeleted, LabelEdited:
		return nil
	default:
		return goerr.Wrap(ErrInvalidOption, "unsupported label action", goerr.V("value", x))
	}
}

// Owner returns the owner part of an "owner/name" slug, or an empty
// string if the slug is malformed.
func (x RepoSlug) Owner() string {
	owner, _ := x.split()
	return owner
}

// Name returns the repository name part of an "owner/name" slug.
func (x RepoSlug) Name() string {
	_, name := x.split()
	return name
}

func (x RepoSlug) split() (string, string) {
	parts := strings.SplitN(string(x), "/", 2)
	if len(parts) != 2 {
		return "", ""
	}
	return parts[0], parts[1]
}

func (x RepoSlug) Validate() error {
	owner, name := x.split()
	if owner == "" || name == "" {
		return goerr.Wrap(ErrInvalidOption, "repository must be in 'owner/name' form", goerr.V("value", x))
	}
	return nil
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x WebhookSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x WebhookSecret) String() string {
	return "***********"
}
