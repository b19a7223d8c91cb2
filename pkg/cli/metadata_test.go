package cli_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/labelmesh/pkg/cli"
	"github.com/m-mizutani/labelmesh/pkg/domain/types"
)

func TestParseRemoteURL(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want types.RepoSlug
	}{
		{
			name: "ssh format",
			url:  "git@github.com:blue/python.git",
			want: "blue/python",
		},
		{
			name: "ssh format without suffix",
			url:  "git@github.com:blue/python",
			want: "blue/python",
		},
		{
			name: "https format",
			url:  "https://github.com/blue/python.git",
			want: "blue/python",
		},
		{
			name: "https format without suffix",
			url:  "https://github.com/blue/python",
			want: "blue/python",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := gt.R1(cli.ParseRemoteURL(tc.url)).NoError(t)
			gt.V(t, repo).Equal(tc.want)
		})
	}

	t.Run("unparsable URL fails", func(t *testing.T) {
		for _, url := range []string{
			"https://gitlab.com/blue/python.git",
			"git@github.com:blue",
			"https://github.com/blue/python/extra",
			"",
		} {
			_, err := cli.ParseRemoteURL(url)
			gt.Error(t, err)
		}
	})
}
