package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/labelmesh/pkg/domain/types"
)

// Label is a name and color pair. Color is a 6-hex-digit string without
// the leading '#'.
type Label struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// LabelSet maps label names to colors. Names are unique per repository
// and case-sensitive; matching against a specification is done
// case-insensitively (see Diff).
type LabelSet map[string]string

// Clone returns a shallow copy of the set.
func (x LabelSet) Clone() LabelSet {
	cloned := make(LabelSet, len(x))
	for name, color := range x {
		cloned[name] = color
	}
	return cloned
}

// DiffPlan holds the changes needed to bring a repository's labels in
// line with a specification. All three maps are keyed by the label name
// as it currently exists on the remote side; for Create the current
// name and the new name coincide. A name appears in at most one map.
type DiffPlan struct {
	Create map[string]Label
	Update map[string]Label
	Delete map[string]Label
}

// SyncLabelsInput is the input of UseCase.SyncLabels. Repos are
// processed strictly in the given order.
type SyncLabelsInput struct {
	Repos   []types.RepoSlug
	Desired LabelSet
	Policy  types.SyncPolicy
	DryRun  bool
}

func (x *SyncLabelsInput) Validate() error {
	if err := x.Policy.Validate(); err != nil {
		return err
	}
	if len(x.Repos) == 0 {
		return goerr.Wrap(types.ErrInvalidOption, "no target repositories")
	}
	for _, repo := range x.Repos {
		if err := repo.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// SyncResult aggregates one reconciliation run.
type SyncResult struct {
	Repos  int
	Errors int
	Status types.SyncStatus
}

// SyncAction identifies the operation a SyncEvent reports on. The
// short codes appear verbatim in console output.
type SyncAction string

const (
	SyncActionCreate SyncAction = "ADD"
	SyncActionUpdate SyncAction = "UPD"
	SyncActionDelete SyncAction = "DEL"
	SyncActionFetch  SyncAction = "LBL"
)

// SyncOutcome is the result of a single label operation.
type SyncOutcome string

const (
	SyncOutcomeSuccess SyncOutcome = "SUC"
	SyncOutcomeError   SyncOutcome = "ERR"
	SyncOutcomeDryRun  SyncOutcome = "DRY"
)

// SyncEvent is emitted to the EventSink for every label operation and
// for failed label fetches. Err is set only for SyncOutcomeError.
type SyncEvent struct {
	Repo   types.RepoSlug
	Action SyncAction
	Result SyncOutcome
	Label  Label
	Err    error
}
