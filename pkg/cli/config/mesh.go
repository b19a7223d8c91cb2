package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/labelmesh/pkg/domain/types"
	"github.com/m-mizutani/labelmesh/pkg/utils/safe"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// DefaultMeshPath is used when the --config flag is not given. A
// missing file at the default path is not an error; a missing file at
// an explicitly given path is.
const DefaultMeshPath = "labelmesh.yml"

// Mesh is the file-backed part of the configuration: the replica set,
// the label specification and optional credentials.
type Mesh struct {
	path string

	GitHub struct {
		Token         types.GitHubToken   `yaml:"token"`
		WebhookSecret types.WebhookSecret `yaml:"webhook_secret"`
	} `yaml:"github"`
	Repos        []types.RepoSlug  `yaml:"repos"`
	Labels       map[string]string `yaml:"labels"`
	TemplateRepo types.RepoSlug    `yaml:"template_repo"`
}

func (x *Mesh) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to configuration file",
			Category:    "Config",
			Destination: &x.path,
			Sources:     cli.EnvVars("LABELMESH_CONFIG"),
			Value:       DefaultMeshPath,
		},
	}
}

// Load reads and validates the configuration file.
func (x *Mesh) Load() error {
	fd, err := os.Open(x.path)
	if err != nil {
		if os.IsNotExist(err) && x.path == DefaultMeshPath {
			return nil
		}
		return goerr.Wrap(err, "failed to open config file", goerr.V("path", x.path))
	}
	defer safe.Close(fd)

	raw, err := io.ReadAll(fd)
	if err != nil {
		return goerr.Wrap(err, "failed to read config file", goerr.V("path", x.path))
	}

	if err := yaml.Unmarshal(raw, x); err != nil {
		return goerr.Wrap(types.ErrInvalidConfig, "failed to parse config file",
			goerr.V("path", x.path), goerr.V("error", err.Error()))
	}

	for _, repo := range x.Repos {
		if err := repo.Validate(); err != nil {
			return goerr.Wrap(err, "invalid repository in config file", goerr.V("path", x.path))
		}
	}
	if x.TemplateRepo != "" {
		if err := x.TemplateRepo.Validate(); err != nil {
			return goerr.Wrap(err, "invalid template repository in config file", goerr.V("path", x.path))
		}
	}

	return nil
}

func (x Mesh) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Path", x.path),
		slog.Int("Token.len", len(x.GitHub.Token)),
		slog.Int("WebhookSecret.len", len(x.GitHub.WebhookSecret)),
		slog.Any("Repos", x.Repos),
		slog.Int("Labels.len", len(x.Labels)),
		slog.Any("TemplateRepo", x.TemplateRepo),
	)
}
