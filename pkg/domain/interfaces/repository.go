package interfaces

import (
	"context"

	"github.com/m-mizutani/labelmesh/pkg/domain/model"
	"github.com/m-mizutani/labelmesh/pkg/domain/types"
)

// EchoGuard remembers label changes this process is about to cause on
// peer repositories, so their webhook echoes can be told apart from
// genuine external changes. Records expire model.EchoWindow after
// registration. Implementations must be safe for concurrent use; the
// relay handler can be invoked from parallel requests.
//
// Suppression is keyed by the repository where the echo will arrive,
// not by the repository the triggering event came from.
type EchoGuard interface {
	// Register appends an expected change for repo, stamped with the
	// current time taken from ctx.
	Register(ctx context.Context, repo types.RepoSlug, rec model.ChangeRecord)

	// Consume purges expired records for repo, then removes exactly one
	// structurally matching record if present. It reports whether a
	// match was consumed, i.e. whether the notification was an echo.
	Consume(ctx context.Context, repo types.RepoSlug, rec model.ChangeRecord) bool

	// PurgeExpired drops expired records across all repositories so the
	// guard's memory stays bounded.
	PurgeExpired(ctx context.Context)
}
