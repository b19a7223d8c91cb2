// Package reporter renders reconciliation progress. The original
// silent/terse/verbose printer variants are a single EventSink
// interface with one implementation per output mode, picked at
// startup and injected into the processor.
package reporter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/labelmesh/pkg/domain/interfaces"
	"github.com/m-mizutani/labelmesh/pkg/domain/model"
	"github.com/m-mizutani/labelmesh/pkg/domain/types"
)

type Mode string

const (
	ModeNormal  Mode = "normal"
	ModeVerbose Mode = "verbose"
	ModeQuiet   Mode = "quiet"
)

type config struct {
	w io.Writer
}

type Option func(*config)

// WithWriter redirects output, mainly for tests. Default is stdout.
func WithWriter(w io.Writer) Option {
	return func(cfg *config) {
		cfg.w = w
	}
}

func New(mode Mode, options ...Option) (interfaces.EventSink, error) {
	cfg := &config{w: os.Stdout}
	for _, opt := range options {
		opt(cfg)
	}

	switch mode {
	case ModeNormal:
		return &consoleSink{w: cfg.w}, nil
	case ModeVerbose:
		return &verboseSink{w: cfg.w}, nil
	case ModeQuiet:
		return &quietSink{}, nil
	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid output mode, should be 'normal', 'verbose' or 'quiet'", goerr.V("value", mode))
	}
}

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	dryRunColor  = color.New(color.FgYellow)
)

func outcomeColor(result model.SyncOutcome) *color.Color {
	switch result {
	case model.SyncOutcomeError:
		return errorColor
	case model.SyncOutcomeDryRun:
		return dryRunColor
	default:
		return successColor
	}
}

func eventLine(ev *model.SyncEvent) string {
	parts := []string{string(ev.Repo)}
	if ev.Label.Name != "" {
		parts = append(parts, ev.Label.Name)
	}
	if ev.Label.Color != "" {
		parts = append(parts, ev.Label.Color)
	}
	if ev.Err != nil {
		parts = append(parts, ev.Err.Error())
	}
	return strings.Join(parts, "; ")
}

func summaryLine(result *model.SyncResult) string {
	if result.Errors > 0 {
		return fmt.Sprintf("%d error(s) in total, please check log above", result.Errors)
	}
	return fmt.Sprintf("%d repo(s) updated successfully", result.Repos)
}

// quietSink drops everything.
type quietSink struct{}

func (x *quietSink) Event(_ *model.SyncEvent)    {}
func (x *quietSink) Summary(_ *model.SyncResult) {}

// consoleSink prints failed operations and the final summary.
type consoleSink struct {
	w io.Writer
}

func (x *consoleSink) Event(ev *model.SyncEvent) {
	if ev.Result != model.SyncOutcomeError {
		return
	}
	fmt.Fprintf(x.w, "%s: %s; %s\n", errorColor.Sprint("ERROR"), ev.Action, eventLine(ev))
}

func (x *consoleSink) Summary(result *model.SyncResult) {
	fmt.Fprintf(x.w, "SUMMARY: %s\n", summaryLine(result))
}

// verboseSink prints one line per operation.
type verboseSink struct {
	w io.Writer
}

func (x *verboseSink) Event(ev *model.SyncEvent) {
	fmt.Fprintf(x.w, "[%s][%s] %s\n", ev.Action, outcomeColor(ev.Result).Sprint(string(ev.Result)), eventLine(ev))
}

func (x *verboseSink) Summary(result *model.SyncResult) {
	fmt.Fprintf(x.w, "[SUMMARY] %s\n", summaryLine(result))
}
