package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/dirnav/internal/action"
	"github.com/atomicstack/dirnav/internal/app"
	"github.com/atomicstack/dirnav/internal/config"
	"github.com/atomicstack/dirnav/internal/format/table"
	"github.com/atomicstack/dirnav/internal/help"
	"github.com/atomicstack/dirnav/internal/keymap"
	"github.com/atomicstack/dirnav/internal/logging"
	"github.com/atomicstack/dirnav/internal/logging/events"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const fallbackWidth = 80

// runApp and terminalWidth are swapped out by tests.
var (
	runApp        = app.Run
	terminalWidth = func(w io.Writer) (int, bool) {
		f, ok := w.(*os.File)
		if !ok || !term.IsTerminal(int(f.Fd())) {
			return 0, false
		}
		width, _, err := term.GetSize(int(f.Fd()))
		return width, err == nil && width > 0
	}
)

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func main() {
	cmd := newRootCmd(os.Args[1:], os.Environ())
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}

func newRootCmd(argv, environ []string) *cobra.Command {
	var opts *config.Options
	root := &cobra.Command{
		Use:   "dirnav",
		Short: "Interactive help screen for the dirnav directory navigator",
		Long: `Shows the dirnav user guide with a shortcut table built from the active
key bindings. Bindings come from the defaults, an optional --keymap-file
and any number of --map overrides.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, doc, err := prepare(cmd, opts, argv)
			if err != nil {
				return err
			}
			traceStartup(cfg)
			if _, err := runApp(cfg.App, cfg.Settings, cfg.Keymap, doc); err != nil {
				logging.Error(err)
				return err
			}
			return nil
		},
	}
	root.SetArgs(argv)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &exitError{code: 2, err: err}
	})
	opts = config.RegisterFlags(root.PersistentFlags(), environ)
	root.AddCommand(newRenderCmd(opts, argv), newKeysCmd(opts, argv))
	return root
}

// newRenderCmd prints the help text wrapped to --width, the terminal width
// or 80 columns, in that order.
func newRenderCmd(opts *config.Options, argv []string) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Print the rendered help text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, doc, err := prepare(cmd, opts, argv)
			if err != nil {
				return err
			}
			w := cfg.App.Width
			if w <= 0 {
				w = fallbackWidth
				if tw, ok := terminalWidth(cmd.OutOrStdout()); ok {
					w = tw
				}
			}
			writeLines(cmd.OutOrStdout(), help.Render(doc, cfg.Settings.Keybinds, w))
			return nil
		},
	}
}

func newKeysCmd(opts *config.Options, argv []string) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the active key bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := prepare(cmd, opts, argv)
			if err != nil {
				return err
			}
			for _, line := range table.Format(bindingRows(cfg.Settings.Keybinds), nil) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}

// prepare builds the configuration, reports its warnings and loads the
// help document. Failures here exit with code 2.
func prepare(cmd *cobra.Command, opts *config.Options, argv []string) (config.Config, *help.Document, error) {
	cfg, warnings, err := opts.Build(argv)
	if err != nil {
		return config.Config{}, nil, &exitError{code: 2, err: fmt.Errorf("configuration error: %w", err)}
	}
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, nil, &exitError{code: 2, err: fmt.Errorf("configuration error: %w", err)}
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	for _, w := range warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
		events.Config.Warning(w)
	}
	doc, err := help.Load()
	if err != nil {
		return config.Config{}, nil, &exitError{code: 2, err: fmt.Errorf("help document: %w", err)}
	}
	return cfg, doc, nil
}

var boldStyle = lipgloss.NewStyle().Bold(true)

func writeLines(w io.Writer, lines []help.Line) {
	for _, line := range lines {
		for _, seg := range line {
			if seg.Bold {
				io.WriteString(w, boldStyle.Render(seg.Text))
				continue
			}
			io.WriteString(w, seg.Text)
		}
		io.WriteString(w, "\n")
	}
}

// bindingRows lists every binding in action order, with a header row.
func bindingRows(m keymap.Map) [][]string {
	inv := keymap.Invert(m)
	rows := [][]string{{"KEY", "CONTEXT", "ACTION", "DESCRIPTION"}}
	for _, a := range action.All() {
		for _, b := range inv[a.String()] {
			rows = append(rows, []string{b.Key.String(), b.Context.String(), a.String(), a.Description()})
		}
	}
	return rows
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"app":      cfg.App,
		"bindings": len(cfg.Settings.Keybinds),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails records which standard descriptors are terminals and
// the first size found.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		f    *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.f.Fd())
		if term.IsTerminal(fd) {
			entry.IsTerminal = true
			width, height, err := term.GetSize(fd)
			if err != nil {
				entry.Error = err.Error()
			} else {
				entry.Width, entry.Height = width, height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
