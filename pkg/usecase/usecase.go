package usecase

import (
	"github.com/m-mizutani/labelmesh/pkg/domain/interfaces"
	"github.com/m-mizutani/labelmesh/pkg/domain/model"
	"github.com/m-mizutani/labelmesh/pkg/domain/types"
	"github.com/m-mizutani/labelmesh/pkg/infra"
	"github.com/m-mizutani/labelmesh/pkg/repository/memory"
)

type UseCase struct {
	clients    *infra.Clients
	sink       interfaces.EventSink
	guard      interfaces.EchoGuard
	replicaSet map[types.RepoSlug]struct{}
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithEventSink replaces the default no-op sink.
func WithEventSink(sink interfaces.EventSink) Option {
	return func(x *UseCase) {
		x.sink = sink
	}
}

// WithEchoGuard replaces the default in-memory guard.
func WithEchoGuard(guard interfaces.EchoGuard) Option {
	return func(x *UseCase) {
		x.guard = guard
	}
}

// WithReplicaSet sets the repositories participating in replication.
// Notifications from repositories outside the set are ignored.
func WithReplicaSet(repos []types.RepoSlug) Option {
	return func(x *UseCase) {
		for _, repo := range repos {
			x.replicaSet[repo] = struct{}{}
		}
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:    clients,
		sink:       &nullSink{},
		guard:      memory.New(),
		replicaSet: map[types.RepoSlug]struct{}{},
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}

type nullSink struct{}

func (x *nullSink) Event(_ *model.SyncEvent)    {}
func (x *nullSink) Summary(_ *model.SyncResult) {}
