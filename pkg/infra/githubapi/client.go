package githubapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/labelmesh/pkg/domain/interfaces"
	"github.com/m-mizutani/labelmesh/pkg/domain/model"
	"github.com/m-mizutani/labelmesh/pkg/domain/types"
	"github.com/m-mizutani/labelmesh/pkg/utils/logging"
	"golang.org/x/oauth2"
)

// Client talks to the GitHub REST API with a personal access token.
type Client struct {
	gh *github.Client
}

var _ interfaces.LabelAPI = (*Client)(nil)

type config struct {
	httpClient *http.Client
	baseURL    string
}

type Option func(*config)

// WithHTTPClient replaces the token-authenticated HTTP client. Mainly
// for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = httpClient
	}
}

// WithBaseURL points the client at a different API endpoint, e.g. a
// test server. The URL must end with a trailing slash.
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) {
		cfg.baseURL = baseURL
	}
}

func New(token types.GitHubToken, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "no GitHub token has been provided")
	}

	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	gh := github.NewClient(httpClient)
	if cfg.baseURL != "" {
		parsed, err := url.Parse(cfg.baseURL)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid API base URL", goerr.V("url", cfg.baseURL))
		}
		gh.BaseURL = parsed
	}

	return &Client{gh: gh}, nil
}

func (x *Client) ListRepositories(ctx context.Context) ([]types.RepoSlug, error) {
	var allRepos []types.RepoSlug
	opts := &github.RepositoryListOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	for {
		result, resp, err := x.gh.Repositories.List(ctx, "", opts)
		if err != nil {
			return nil, wrapUpstream(err, "failed to list repositories")
		}

		for _, repo := range result {
			allRepos = append(allRepos, types.RepoSlug(repo.GetFullName()))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logging.From(ctx).Debug("Listed accessible repositories", slog.Int("count", len(allRepos)))

	return allRepos, nil
}

func (x *Client) ListLabels(ctx context.Context, repo types.RepoSlug) (model.LabelSet, error) {
	labels := model.LabelSet{}
	opts := &github.ListOptions{PerPage: 100}

	for {
		result, resp, err := x.gh.Issues.ListLabels(ctx, repo.Owner(), repo.Name(), opts)
		if err != nil {
			return nil, wrapUpstream(err, "failed to list labels", goerr.V("repo", repo))
		}

		for _, label := range result {
			labels[label.GetName()] = label.GetColor()
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return labels, nil
}

func (x *Client) CreateLabel(ctx context.Context, repo types.RepoSlug, label model.Label) error {
	_, _, err := x.gh.Issues.CreateLabel(ctx, repo.Owner(), repo.Name(), &github.Label{
		Name:  github.String(label.Name),
		Color: github.String(label.Color),
	})
	if err != nil {
		return wrapUpstream(err, "failed to create label",
			goerr.V("repo", repo),
			goerr.V("label", label.Name),
		)
	}
	return nil
}

func (x *Client) UpdateLabel(ctx context.Context, repo types.RepoSlug, label model.Label, prevName string) error {
	lookup := prevName
	if lookup == "" {
		lookup = label.Name
	}

	_, _, err := x.gh.Issues.EditLabel(ctx, repo.Owner(), repo.Name(), lookup, &github.Label{
		Name:  github.String(label.Name),
		Color: github.String(label.Color),
	})
	if err != nil {
		return wrapUpstream(err, "failed to update label",
			goerr.V("repo", repo),
			goerr.V("label", label.Name),
			goerr.V("prev_name", prevName),
		)
	}
	return nil
}

func (x *Client) DeleteLabel(ctx context.Context, repo types.RepoSlug, name string) error {
	_, err := x.gh.Issues.DeleteLabel(ctx, repo.Owner(), repo.Name(), name)
	if err != nil {
		return wrapUpstream(err, "failed to delete label",
			goerr.V("repo", repo),
			goerr.V("label", name),
		)
	}
	return nil
}

// wrapUpstream maps a go-github error onto the upstream error taxonomy,
// carrying the status code and the upstream message as values.
func wrapUpstream(err error, msg string, values ...goerr.Option) error {
	var ghErr *github.ErrorResponse
	if !errors.As(err, &ghErr) || ghErr.Response == nil {
		return goerr.Wrap(err, msg, values...)
	}

	values = append(values,
		goerr.V("status_code", ghErr.Response.StatusCode),
		goerr.V("upstream_message", ghErr.Message),
	)

	var sentinel error
	switch ghErr.Response.StatusCode {
	case http.StatusUnauthorized:
		sentinel = types.ErrAuthenticationFailed
	case http.StatusNotFound:
		sentinel = types.ErrNotFound
	case http.StatusUnprocessableEntity:
		sentinel = types.ErrValidationFailed
	default:
		sentinel = types.ErrUpstream
	}

	return goerr.Wrap(sentinel, msg, values...)
}
