package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/labelmesh/pkg/domain/types"
	"github.com/m-mizutani/labelmesh/pkg/infra/githubapi"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	token   types.GitHubToken `masq:"secret"`
	baseURL string
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("LABELMESH_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub API base URL (for GitHub Enterprise)",
			Category:    "GitHub",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("LABELMESH_GITHUB_BASE_URL"),
		},
	}
}

// NewClient builds the GitHub API client. The token flag wins over the
// token from the config file.
func (x GitHub) NewClient(fileToken types.GitHubToken) (*githubapi.Client, error) {
	token := x.token
	if token == "" {
		token = fileToken
	}
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidConfig, "no GitHub token has been provided")
	}

	var options []githubapi.Option
	if x.baseURL != "" {
		options = append(options, githubapi.WithBaseURL(x.baseURL))
	}
	return githubapi.New(token, options...)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("Token.len", len(x.token)),
		slog.String("BaseURL", x.baseURL),
	)
}
