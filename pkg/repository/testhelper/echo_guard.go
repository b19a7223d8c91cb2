package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/labelmesh/pkg/domain/interfaces"
	"github.com/m-mizutani/labelmesh/pkg/domain/model"
	"github.com/m-mizutani/labelmesh/pkg/domain/types"
	"github.com/m-mizutani/labelmesh/pkg/utils/logging"
)

// RunEchoGuardTests runs the common behavior suite against an EchoGuard
// implementation. newGuard must return a fresh, empty guard per call.
func RunEchoGuardTests(t *testing.T, newGuard func() interfaces.EchoGuard) {
	t.Helper()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	at := func(offset time.Duration) context.Context {
		return logging.CtxWithTime(context.Background(), func() time.Time {
			return base.Add(offset)
		})
	}
	record := func(name string) model.ChangeRecord {
		return model.ChangeRecord{
			Action: types.LabelCreated,
			Name:   name,
			Color:  "ee0701",
		}
	}
	repo := types.RepoSlug("octocat/alpha")

	t.Run("consume removes a registered record once", func(t *testing.T) {
		guard := newGuard()
		guard.Register(at(0), repo, record("bug"))

		gt.True(t, guard.Consume(at(time.Second), repo, record("bug")))
		gt.False(t, guard.Consume(at(2*time.Second), repo, record("bug")))
	})

	t.Run("consume removes exactly one of duplicate records", func(t *testing.T) {
		guard := newGuard()
		guard.Register(at(0), repo, record("bug"))
		guard.Register(at(0), repo, record("bug"))

		gt.True(t, guard.Consume(at(time.Second), repo, record("bug")))
		gt.True(t, guard.Consume(at(2*time.Second), repo, record("bug")))
		gt.False(t, guard.Consume(at(3*time.Second), repo, record("bug")))
	})

	t.Run("records are scoped per repository", func(t *testing.T) {
		guard := newGuard()
		guard.Register(at(0), repo, record("bug"))

		gt.False(t, guard.Consume(at(time.Second), types.RepoSlug("octocat/beta"), record("bug")))
		gt.True(t, guard.Consume(at(time.Second), repo, record("bug")))
	})

	t.Run("structural mismatch is not consumed", func(t *testing.T) {
		guard := newGuard()
		guard.Register(at(0), repo, record("bug"))

		other := record("bug")
		other.Color = "00ff00"
		gt.False(t, guard.Consume(at(time.Second), repo, other))
	})

	t.Run("record expires after the echo window", func(t *testing.T) {
		guard := newGuard()
		guard.Register(at(0), repo, record("bug"))

		gt.False(t, guard.Consume(at(model.EchoWindow), repo, record("bug")))
	})

	t.Run("record is still valid just inside the window", func(t *testing.T) {
		guard := newGuard()
		guard.Register(at(0), repo, record("bug"))

		gt.True(t, guard.Consume(at(model.EchoWindow-time.Millisecond), repo, record("bug")))
	})

	t.Run("purge drops expired records only", func(t *testing.T) {
		guard := newGuard()
		guard.Register(at(0), repo, record("old"))
		guard.Register(at(8*time.Second), repo, record("fresh"))

		guard.PurgeExpired(at(12 * time.Second))

		gt.False(t, guard.Consume(at(12*time.Second), repo, record("old")))
		gt.True(t, guard.Consume(at(12*time.Second), repo, record("fresh")))
	})
}
