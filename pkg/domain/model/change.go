package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/labelmesh/pkg/domain/types"
)

// EchoWindow is how long a registered expected change stays valid in
// the replication guard. A structurally matching notification arriving
// later than this is treated as a genuine external change.
const EchoWindow = 10 * time.Second

// LabelEvent is a validated single-repository label change
// notification. PrevName is set only for edits that renamed the label.
type LabelEvent struct {
	Action   types.LabelAction
	Repo     types.RepoSlug
	Label    Label
	PrevName string
}

func (x *LabelEvent) Validate() error {
	if err := x.Action.Validate(); err != nil {
		return err
	}
	if err := x.Repo.Validate(); err != nil {
		return err
	}
	if x.Label.Name == "" {
		return goerr.Wrap(types.ErrInvalidOption, "label name is empty", goerr.V("repo", x.Repo))
	}
	return nil
}

// ChangeRecord describes one label change for echo suppression. It is
// immutable once constructed; all fields are resolved up front so the
// record stored in the guard cannot drift from the notification it was
// built from. Equality is structural and ignores CreatedAt.
type ChangeRecord struct {
	Action    types.LabelAction
	Name      string
	Color     string // empty for deletions
	PrevName  string
	CreatedAt time.Time
}

// NewChangeRecord builds the record a given notification would produce
// when it echoes back from a peer repository.
func NewChangeRecord(ev *LabelEvent, now time.Time) ChangeRecord {
	rec := ChangeRecord{
		Action:    ev.Action,
		Name:      ev.Label.Name,
		PrevName:  ev.PrevName,
		CreatedAt: now,
	}
	if ev.Action != types.LabelDeleted {
		rec.Color = ev.Label.Color
	}
	return rec
}

// Matches reports structural equality, ignoring CreatedAt.
func (x ChangeRecord) Matches(other ChangeRecord) bool {
	return x.Action == other.Action &&
		x.Name == other.Name &&
		x.Color == other.Color &&
		x.PrevName == other.PrevName
}

// Expired reports whether the record's age at now is EchoWindow or more.
func (x ChangeRecord) Expired(now time.Time) bool {
	return !x.CreatedAt.After(now.Add(-EchoWindow))
}
