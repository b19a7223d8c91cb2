package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/labelmesh/pkg/domain/interfaces"
	"github.com/m-mizutani/labelmesh/pkg/domain/model"
	"github.com/m-mizutani/labelmesh/pkg/domain/types"
	"github.com/m-mizutani/labelmesh/pkg/utils/logging"
)

// New creates a new in-memory echo guard
func New() interfaces.EchoGuard {
	return &echoGuard{
		records: make(map[types.RepoSlug][]model.ChangeRecord),
	}
}

type echoGuard struct {
	mu      sync.Mutex
	records map[types.RepoSlug][]model.ChangeRecord
}

func (x *echoGuard) Register(ctx context.Context, repo types.RepoSlug, rec model.ChangeRecord) {
	x.mu.Lock()
	defer x.mu.Unlock()

	rec.CreatedAt = logging.CtxTime(ctx)
	x.records[repo] = append(x.records[repo], rec)
}

func (x *echoGuard) Consume(ctx context.Context, repo types.RepoSlug, rec model.ChangeRecord) bool {
	x.mu.Lock()
	defer x.mu.Unlock()

	now := logging.CtxTime(ctx)
	remaining := valid(x.records[repo], now)

	for i, candidate := range remaining {
		if candidate.Matches(rec) {
			x.records[repo] = append(remaining[:i:i], remaining[i+1:]...)
			return true
		}
	}

	x.records[repo] = remaining
	return false
}

func (x *echoGuard) PurgeExpired(ctx context.Context) {
	x.mu.Lock()
	defer x.mu.Unlock()

	now := logging.CtxTime(ctx)
	for repo, records := range x.records {
		remaining := valid(records, now)
		if len(remaining) == 0 {
			delete(x.records, repo)
			continue
		}
		x.records[repo] = remaining
	}
}

func valid(records []model.ChangeRecord, now time.Time) []model.ChangeRecord {
	var remaining []model.ChangeRecord
	for _, rec := range records {
		if !rec.Expired(now) {
			remaining = append(remaining, rec)
		}
	}
	return remaining
}
