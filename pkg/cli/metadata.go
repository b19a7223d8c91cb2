package cli

import (
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/labelmesh/pkg/domain/types"
)

// detectRepoSlug resolves the GitHub repository of the working copy at
// dir from its origin remote.
func detectRepoSlug(dir string) (types.RepoSlug, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return "", goerr.Wrap(err, "failed to open git repository")
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", goerr.Wrap(err, "failed to get remote origin")
	}

	if len(remote.Config().URLs) == 0 {
		return "", goerr.New("no remote URL found")
	}

	return ParseRemoteURL(remote.Config().URLs[0])
}

// ParseRemoteURL extracts the owner/name slug from a GitHub remote URL
// in either SSH (git@github.com:owner/repo.git) or HTTPS
// (https://github.com/owner/repo.git) form.
func ParseRemoteURL(url string) (types.RepoSlug, error) {
	var slug string

	if rest, ok := strings.CutPrefix(url, "git@github.com:"); ok {
		slug = rest
	} else if _, rest, ok := strings.Cut(url, "github.com/"); ok {
		slug = rest
	}

	slug = strings.TrimSuffix(slug, ".git")
	if parts := strings.Split(slug, "/"); len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", goerr.New("failed to parse GitHub owner/repo from git remote URL", goerr.V("url", url))
	}

	repo := types.RepoSlug(slug)
	if err := repo.Validate(); err != nil {
		return "", err
	}
	return repo, nil
}
