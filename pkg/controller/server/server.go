package server

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/labelmesh/pkg/domain/interfaces"
	"github.com/m-mizutani/labelmesh/pkg/domain/types"
	"github.com/m-mizutani/labelmesh/pkg/utils/errutil"
	"github.com/m-mizutani/labelmesh/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	secret     types.WebhookSecret
	replicaSet map[types.RepoSlug]struct{}
}

type Option func(*config)

// WithWebhookSecret sets the shared secret for HMAC signature
// verification of inbound webhook deliveries. The serve command
// refuses to start without one; an empty secret skips verification.
func WithWebhookSecret(secret types.WebhookSecret) Option {
	return func(cfg *config) {
		cfg.secret = secret
	}
}

// WithReplicaSet declares the repositories participating in
// replication. Label events from any other repository are rejected.
func WithReplicaSet(repos []types.RepoSlug) Option {
	return func(cfg *config) {
		for _, repo := range repos {
			cfg.replicaSet[repo] = struct{}{}
		}
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		replicaSet: map[types.RepoSlug]struct{}{},
	}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route("/webhook", func(r chi.Router) {
		r.Post("/github", func(w http.ResponseWriter, r *http.Request) {
			code, err := handleGitHubEvent(r, uc, cfg)
			if err != nil {
				errutil.HandleError(r.Context(), "fail to handle GitHub event", err)
				safeWrite(w, code, []byte(err.Error()))
				return
			}

			safeWrite(w, code, nil)
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
