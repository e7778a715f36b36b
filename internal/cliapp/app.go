// Package cliapp wires configuration, logging and the naming strategy into the
// resource-naming command.
package cliapp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"resource-naming/internal/config"
	"resource-naming/internal/inflect"
	"resource-naming/internal/logging"
	"resource-naming/internal/manifest"
	"resource-naming/internal/schemanaming"
	"resource-naming/internal/sqlutil"
	"resource-naming/naming"
)

// ErrUsage is returned when the command line does not name a valid command.
var ErrUsage = errors.New("invalid usage")

// command derives one name from its arguments.
type command struct {
	args   string
	min    int
	max    int
	derive func(s naming.Strategy, args []string) string
}

var commands = map[string]command{
	"table": {
		args: "<class>", min: 1, max: 1,
		derive: func(s naming.Strategy, a []string) string { return s.ClassToTableName(a[0]) },
	},
	"column": {
		args: "<property>", min: 1, max: 1,
		derive: func(s naming.Strategy, a []string) string { return s.PropertyToColumnName(a[0], "") },
	},
	"embedded": {
		args: "<property> <embedded-column>", min: 2, max: 2,
		derive: func(s naming.Strategy, a []string) string { return s.EmbeddedFieldToColumnName(a[0], a[1], "", "") },
	},
	"reference": {
		args: "", min: 0, max: 0,
		derive: func(s naming.Strategy, a []string) string { return s.ReferenceColumnName() },
	},
	"join-column": {
		args: "<property>", min: 1, max: 1,
		derive: func(s naming.Strategy, a []string) string { return s.JoinColumnName(a[0], "") },
	},
	"join-table": {
		args: "<source-entity> <target-entity>", min: 2, max: 2,
		derive: func(s naming.Strategy, a []string) string { return s.JoinTableName(a[0], a[1], "") },
	},
	"join-key": {
		args: "<entity> [referenced-column]", min: 1, max: 2,
		derive: func(s naming.Strategy, a []string) string {
			ref := ""
			if len(a) > 1 {
				ref = a[1]
			}
			return s.JoinKeyColumnName(a[0], ref)
		},
	},
}

// Usage describes the available commands.
func Usage() string {
	names := make([]string, 0, len(commands)+1)
	for name := range commands {
		names = append(names, name)
	}
	names = append(names, "map")
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("usage: resource-naming [flags] <command> [args]\n\ncommands:\n")
	for _, name := range names {
		args := "<manifest-file>"
		if cmd, ok := commands[name]; ok {
			args = cmd.args
		}
		fmt.Fprintf(&b, "  %-12s %s\n", name, args)
	}
	return b.String()
}

// App runs resource-naming commands.
type App struct {
	strategy *naming.ResourceStrategy
	logger   *logging.Logger
	out      io.Writer
	output   config.OutputConfig
	quote    sqlutil.QuoteStyle
}

// New creates an App from validated configuration.
func New(cfg *config.Config, logger *logging.Logger, out io.Writer) (*App, error) {
	inf, err := inflect.New(cfg.Naming)
	if err != nil {
		return nil, fmt.Errorf("failed to create inflector: %w", err)
	}
	quote, err := sqlutil.ParseQuoteStyle(cfg.Output.QuoteStyle)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewLogger(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	}

	logger.Debug("naming strategy initialized",
		slog.String("locale", inf.Locale()),
		slog.Int("plural_overrides", len(cfg.Naming.PluralOverrides)),
		slog.Int("singular_overrides", len(cfg.Naming.SingularOverrides)),
	)

	return &App{
		strategy: naming.NewWithInflector(inf),
		logger:   logger,
		out:      out,
		output:   cfg.Output,
		quote:    quote,
	}, nil
}

// Run executes the command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", ErrUsage)
	}
	name, rest := args[0], args[1:]
	ctx = logging.WithLogger(ctx, a.logger.WithFields(slog.String("command", name)))

	if name == "map" {
		if len(rest) != 1 {
			return fmt.Errorf("%w: map <manifest-file>", ErrUsage)
		}
		return a.runMap(ctx, rest[0])
	}

	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", ErrUsage, name)
	}
	if len(rest) < cmd.min || len(rest) > cmd.max {
		return fmt.Errorf("%w: %s %s", ErrUsage, name, cmd.args)
	}

	result := cmd.derive(a.strategy, rest)
	logging.FromContext(ctx).Debug("derived name",
		slog.Any("input", rest),
		slog.String("result", result),
	)
	return a.writeResult(name, rest, result)
}

type resultJSON struct {
	Command  string   `json:"command"`
	Input    []string `json:"input"`
	Result   string   `json:"result"`
	Reserved bool     `json:"reserved,omitempty"`
}

func (a *App) writeResult(name string, input []string, result string) error {
	reserved := schemanaming.IsReserved(result)
	if a.output.Format == "json" {
		if input == nil {
			input = []string{}
		}
		return a.writeJSON(resultJSON{Command: name, Input: input, Result: result, Reserved: reserved})
	}
	_, err := fmt.Fprintln(a.out, a.render(result, reserved))
	return err
}

func (a *App) runMap(ctx context.Context, path string) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}

	logger := logging.FromContext(ctx)
	plan := schemanaming.NewApplier(a.strategy, logger.Logger).Apply(m)
	logger.Info("naming plan derived",
		slog.String("manifest", path),
		slog.Int("tables", len(plan.Tables)),
		slog.Int("join_tables", len(plan.JoinTables)),
	)

	if a.output.Format == "json" {
		return a.writeJSON(plan)
	}
	return a.writePlanText(plan)
}

func (a *App) writePlanText(plan *schemanaming.Plan) error {
	var b strings.Builder
	for _, t := range plan.Tables {
		fmt.Fprintf(&b, "table %s (%s)\n", a.render(t.Name, t.Reserved), t.Class)
		for _, c := range t.Columns {
			fmt.Fprintf(&b, "  %s\t%s\n", a.render(c.Name, c.Reserved), c.Source)
		}
	}
	for _, jt := range plan.JoinTables {
		fmt.Fprintf(&b, "join table %s (%s <-> %s)\n", a.render(jt.Name, jt.Reserved),
			naming.SimpleName(jt.Source), naming.SimpleName(jt.Target))
		for _, c := range jt.Columns {
			fmt.Fprintf(&b, "  %s\t%s\n", a.render(c.Name, c.Reserved), c.Source)
		}
	}
	_, err := io.WriteString(a.out, b.String())
	return err
}

func (a *App) writeJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// render quotes reserved names when configured to.
func (a *App) render(name string, reserved bool) string {
	if !reserved || !a.output.QuoteReserved {
		return name
	}
	if a.quote == sqlutil.QuoteBacktick {
		return sqlutil.QuoteIdentifier(name)
	}
	return sqlutil.Quote(name, a.quote)
}
