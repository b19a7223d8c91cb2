package model

import (
	"strings"

	"github.com/m-mizutani/labelmesh/pkg/domain/types"
)

// Diff computes the plan that turns current into desired under the
// given policy. It is a pure function and never fails.
//
// Matching between current and desired names is case-insensitive. A
// specification entry that matches an existing label only up to case
// becomes an update keyed by the existing (pre-rename) name, carrying
// the new name and color. PolicyReplace additionally deletes every
// current label whose exact name is absent from the specification;
// PolicyUpdate never deletes.
func Diff(current, desired LabelSet, policy types.SyncPolicy) *DiffPlan {
	plan := &DiffPlan{
		Create: make(map[string]Label),
		Update: make(map[string]Label),
		Delete: make(map[string]Label),
	}

	index := make(map[string]Label, len(current))
	for name, color := range current {
		index[strings.ToLower(name)] = Label{Name: name, Color: color}
	}

	for name, color := range desired {
		existing, ok := index[strings.ToLower(name)]
		switch {
		case !ok:
			plan.Create[name] = Label{Name: name, Color: color}

		case existing.Name != name:
			// Case-only rename, keyed by the pre-rename name.
			plan.Update[existing.Name] = Label{Name: name, Color: color}

		case existing.Color != color:
			plan.Update[name] = Label{Name: name, Color: color}
		}
	}

	if policy == types.PolicyReplace {
		for name, color := range current {
			if _, ok := desired[name]; ok {
				continue
			}
			// A case-only rename already owns this name as an update.
			if _, ok := plan.Update[name]; ok {
				continue
			}
			plan.Delete[name] = Label{Name: name, Color: color}
		}
	}

	return plan
}
