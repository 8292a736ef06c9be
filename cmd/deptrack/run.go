package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/delaneyj/deptrack/cmd/deptrack/templates"
	"github.com/delaneyj/deptrack/loader"
	"github.com/delaneyj/deptrack/metrics"
	"github.com/delaneyj/deptrack/observe"
	"gopkg.in/yaml.v3"
)

type runConfig struct {
	data    string
	watches []string
	sets    []string
	metrics bool
	verbose bool
}

// execute loads the document, binds the watchers and applies the writes.
// Only an unreadable document is an error; failed watches and writes end up
// in the report.
func execute(ctx context.Context, cfg *runConfig, stdout, stderr io.Writer) error {
	start := time.Now()
	if cfg.verbose {
		log.Printf("deptrack run started on %s", cfg.data)
		defer func() {
			log.Printf("deptrack run finished in %v", time.Since(start))
		}()
	}

	doc, err := loader.Load(cfg.data)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	opts := []observe.Option{
		observe.WithLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))),
	}
	var collector *metrics.Collector
	if cfg.metrics {
		collector = metrics.NewCollector()
		opts = append(opts, observe.WithHooks(collector))
	}
	sys := observe.NewSystem(opts...)
	root := observe.MakeReactive(sys, doc)

	report := &templates.Report{
		Source:       cfg.data,
		DigestBefore: observe.Digest(root),
	}

	// events of the write in progress
	var events []templates.Event
	for _, expr := range cfg.watches {
		binding := templates.Binding{Path: expr}
		w, err := observe.NewWatcher(root, expr, func(v any) error {
			events = append(events, templates.Event{Path: expr, Value: formatValue(v)})
			return nil
		})
		if err != nil {
			binding.Err = err.Error()
		} else {
			binding.Initial = formatValue(w.Value())
			binding.Deps = w.Deps()
		}
		report.Bindings = append(report.Bindings, binding)
	}

	for _, assignment := range cfg.sets {
		if err := ctx.Err(); err != nil {
			return err
		}
		events = nil
		write := templates.Write{Assignment: assignment}
		if err := apply(root, assignment); err != nil {
			write.Errors = errorLines(err)
		}
		write.Events = events
		report.Writes = append(report.Writes, write)
	}

	report.DigestAfter = observe.Digest(root)
	state, err := yaml.Marshal(observe.Snapshot(root))
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	report.State = string(state)

	templates.WriteRunReport(stdout, report)
	if collector != nil {
		fmt.Fprintln(stdout)
		if err := collector.WriteText(stdout); err != nil {
			return err
		}
	}
	return nil
}

var errBadAssignment = errors.New("expected path=value")

func apply(root *observe.Node, assignment string) error {
	expr, raw, ok := strings.Cut(assignment, "=")
	if !ok {
		return errBadAssignment
	}
	value, err := loader.ParseValue(raw)
	if err != nil {
		return err
	}
	return observe.AssignPath(root, strings.TrimSpace(expr), value)
}

// errorLines flattens joined errors into one message per failure.
func errorLines(err error) []string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var lines []string
		for _, e := range joined.Unwrap() {
			lines = append(lines, errorLines(e)...)
		}
		return lines
	}
	return []string{err.Error()}
}

func formatValue(v any) string {
	switch v := observe.Snapshot(v).(type) {
	case nil:
		return "null"
	case string:
		return v
	case map[string]any, []any:
		// flow style keeps the event on one line
		var node yaml.Node
		if err := node.Encode(v); err != nil {
			return fmt.Sprint(v)
		}
		setFlow(&node)
		out, err := yaml.Marshal(&node)
		if err != nil {
			return fmt.Sprint(v)
		}
		return strings.TrimSpace(string(out))
	default:
		return fmt.Sprint(v)
	}
}

func setFlow(n *yaml.Node) {
	if n.Kind == yaml.MappingNode || n.Kind == yaml.SequenceNode {
		n.Style |= yaml.FlowStyle
	}
	for _, c := range n.Content {
		setFlow(c)
	}
}
