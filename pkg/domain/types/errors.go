package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption = goerr.New("invalid option")
	ErrInvalidConfig = goerr.New("invalid configuration")

	// Upstream GitHub API failures, keyed by the response status code.
	// The wrapping error carries "status_code" and "upstream_message"
	// values for logging and reporting.
	ErrAuthenticationFailed = goerr.New("authentication failed")
	ErrNotFound             = goerr.New("repository or label not found")
	ErrValidationFailed     = goerr.New("invalid label payload")
	ErrUpstream             = goerr.New("unexpected upstream error")
)
