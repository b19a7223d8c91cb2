package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/labelmesh/pkg/domain/model"
	"github.com/m-mizutani/labelmesh/pkg/domain/types"
)

func TestLabelEventValidate(t *testing.T) {
	valid := model.LabelEvent{
		Action: types.LabelCreated,
		Repo:   "blue/python",
		Label:  model.Label{Name: "bug", Color: "ee0701"},
	}
	gt.NoError(t, valid.Validate())

	t.Run("unknown action", func(t *testing.T) {
		ev := valid
		ev.Action = "renamed"
		gt.Error(t, ev.Validate()).Is(types.ErrInvalidOption)
	})

	t.Run("malformed repo", func(t *testing.T) {
		ev := valid
		ev.Repo = "python"
		gt.Error(t, ev.Validate()).Is(types.ErrInvalidOption)
	})

	t.Run("empty label name", func(t *testing.T) {
		ev := valid
		ev.Label.Name = ""
		gt.Error(t, ev.Validate()).Is(types.ErrInvalidOption)
	})
}

func TestChangeRecord(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("deletion drops the color", func(t *testing.T) {
		rec := model.NewChangeRecord(&model.LabelEvent{
			Action: types.LabelDeleted,
			Repo:   "blue/python",
			Label:  model.Label{Name: "stale", Color: "cccccc"},
		}, now)
		gt.V(t, rec.Color).Equal("")
	})

	t.Run("matching ignores the timestamp", func(t *testing.T) {
		ev := &model.LabelEvent{
			Action: types.LabelCreated,
			Repo:   "blue/python",
			Label:  model.Label{Name: "bug", Color: "ee0701"},
		}
		a := model.NewChangeRecord(ev, now)
		b := model.NewChangeRecord(ev, now.Add(5*time.Second))
		gt.True(t, a.Matches(b))
	})

	t.Run("any structural difference breaks the match", func(t *testing.T) {
		base := &model.LabelEvent{
			Action: types.LabelEdited,
			Repo:   "blue/python",
			Label:  model.Label{Name: "bug", Color: "ee0701"},
		}
		rec := model.NewChangeRecord(base, now)

		for _, mutate := range []func(*model.LabelEvent){
			func(ev *model.LabelEvent) { ev.Action = types.LabelCreated },
			func(ev *model.LabelEvent) { ev.Label.Name = "feature" },
			func(ev *model.LabelEvent) { ev.Label.Color = "00ff00" },
			func(ev *model.LabelEvent) { ev.PrevName = "defect" },
		} {
			other := *base
			mutate(&other)
			gt.False(t, rec.Matches(model.NewChangeRecord(&other, now)))
		}
	})

	t.Run("expires at exactly the window boundary", func(t *testing.T) {
		rec := model.NewChangeRecord(&model.LabelEvent{
			Action: types.LabelCreated,
			Repo:   "blue/python",
			Label:  model.Label{Name: "bug", Color: "ee0701"},
		}, now)

		gt.False(t, rec.Expired(now))
		gt.False(t, rec.Expired(now.Add(model.EchoWindow-time.Nanosecond)))
		gt.True(t, rec.Expired(now.Add(model.EchoWindow)))
		gt.True(t, rec.Expired(now.Add(time.Minute)))
	})
}
