package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/dirnav/internal/app"
	"github.com/atomicstack/dirnav/internal/keymap"
	"github.com/atomicstack/dirnav/internal/settings"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Settings settings.Settings
	Keymap   keymap.Source
	Logging  Logging
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envFiles         = "DIRNAV_FILES"
	envCaseSensitive = "DIRNAV_CASE_SENSITIVE"
	envGapSearch     = "DIRNAV_GAP_SEARCH"
	envSort          = "DIRNAV_SORT"
	envAutocd        = "DIRNAV_AUTOCD_TIMEOUT"
	envHistoryFile   = "DIRNAV_HISTORY_FILE"
	envMouse         = "DIRNAV_MOUSE"
	envMap           = "DIRNAV_MAP"
	envClearKeymap   = "DIRNAV_CLEAR_DEFAULT_KEYMAP"
	envKeymapFile    = "DIRNAV_KEYMAP_FILE"
	envWatchKeymap   = "DIRNAV_WATCH_KEYMAP"
	envWidth         = "DIRNAV_WIDTH"
	envHeight        = "DIRNAV_HEIGHT"
	envShowFooter    = "DIRNAV_FOOTER"
	envTrace         = "DIRNAV_TRACE"
	envLogFile       = "DIRNAV_LOG_FILE"
)

// Options holds the flag values bound by RegisterFlags. Call Build after
// the flag set has been parsed.
type Options struct {
	raw settings.Raw

	maps        []string
	clearKeymap bool
	keymapFile  string
	watchKeymap bool
	width       int
	height      int
	footer      bool
	trace       bool
	logFile     string
}

// RegisterFlags binds every option to fs. Defaults come from the DIRNAV_*
// variables in environ, falling back to the built-in defaults.
func RegisterFlags(fs *pflag.FlagSet, environ []string) *Options {
	env := parseEnv(environ)
	def := settings.DefaultRaw()
	o := &Options{}

	fs.StringVarP(&o.raw.Files, "files", "F", envOrDefault(env, envFiles, def.Files), "how files are handled: ignore|i, hide|h, match|m")
	fs.StringVarP(&o.raw.CaseSensitive, "case-sensitive", "c", envOrDefault(env, envCaseSensitive, def.CaseSensitive), "case sensitivity: ignore|i, sensitive|s, smart|S")
	fs.StringVarP(&o.raw.GapSearch, "gap-search", "g", envOrDefault(env, envGapSearch, def.GapSearch), "search mode: normal|n, normal-any|N, gap-from-start|g, gap-any|G")
	fs.StringVarP(&o.raw.Sort, "sort", "s", envOrDefault(env, envSort, def.Sort), "sort order: name, created, modified")
	fs.StringVar(&o.raw.AutocdTimeout, "autocd-timeout", envOrDefault(env, envAutocd, def.AutocdTimeout), "enter a lone match after this delay: off, milliseconds or a duration")
	fs.StringVar(&o.raw.HistoryFile, "history-file", envOrDefault(env, envHistoryFile, ""), "path of the visited-directory history")
	fs.BoolVar(&o.raw.Mouse, "mouse", envOrBool(env, envMouse, false), "enable mouse wheel scrolling")
	fs.BoolVarP(&o.raw.FilterSearch, "filter-search", "f", false, "deprecated: use --files match")
	fs.BoolVarP(&o.raw.FoldersOnly, "folders-only", "d", false, "deprecated: use --files hide")
	fs.BoolVarP(&o.raw.NoFoldersOnly, "no-folders-only", "D", false, "deprecated: use --files ignore or --files match")
	_ = fs.MarkHidden("filter-search")
	_ = fs.MarkHidden("folders-only")
	_ = fs.MarkHidden("no-folders-only")

	fs.StringArrayVarP(&o.maps, "map", "m", envOrFields(env, envMap), "bind a key: key:action or key:context:action (repeatable, action None unbinds)")
	fs.BoolVar(&o.clearKeymap, "clear-default-keymap", envOrBool(env, envClearKeymap, false), "start from an empty keymap instead of the defaults")
	fs.StringVar(&o.keymapFile, "keymap-file", envOrDefault(env, envKeymapFile, ""), "YAML or TOML file with key bindings")
	fs.BoolVar(&o.watchKeymap, "watch-keymap", envOrBool(env, envWatchKeymap, false), "reload --keymap-file when it changes")

	fs.IntVar(&o.width, "width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	fs.IntVar(&o.height, "height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	fs.BoolVar(&o.footer, "footer", envOrBool(env, envShowFooter, true), "show the search/mode footer row")
	fs.BoolVar(&o.trace, "trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	fs.StringVar(&o.logFile, "log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	return o
}

// Build turns parsed options into a Config. Invalid option values are
// returned as warnings; only out-of-range sizes and an unusable keymap file
// are errors.
func (o *Options) Build(args []string) (Config, []string, error) {
	if o.width < 0 {
		return Config{}, nil, fmt.Errorf("width must be >= 0 (got %d)", o.width)
	}
	if o.height < 0 {
		return Config{}, nil, fmt.Errorf("height must be >= 0 (got %d)", o.height)
	}

	s, warns := settings.Parse(o.raw)
	src := keymap.Source{
		ClearDefaults: o.clearKeymap,
		File:          strings.TrimSpace(o.keymapFile),
		Specs:         append([]string(nil), o.maps...),
	}
	km, keymapWarns, err := src.Build()
	if err != nil {
		return Config{}, nil, err
	}
	warns = append(warns, keymapWarns...)
	s.Keybinds = km

	cfg := Config{
		App: app.Config{
			Width:       o.width,
			Height:      o.height,
			ShowFooter:  o.footer,
			Mouse:       s.MouseEnable,
			WatchKeymap: o.watchKeymap,
		},
		Settings: s,
		Keymap:   src,
		Logging: Logging{
			FilePath: o.logFile,
			Trace:    o.trace,
		},
		Flags: map[string]string{
			"files":                o.raw.Files,
			"case-sensitive":       o.raw.CaseSensitive,
			"gap-search":           o.raw.GapSearch,
			"sort":                 o.raw.Sort,
			"autocd-timeout":       o.raw.AutocdTimeout,
			"history-file":         o.raw.HistoryFile,
			"mouse":                strconv.FormatBool(o.raw.Mouse),
			"map":                  strings.Join(o.maps, " "),
			"clear-default-keymap": strconv.FormatBool(o.clearKeymap),
			"keymap-file":          o.keymapFile,
			"watch-keymap":         strconv.FormatBool(o.watchKeymap),
			"width":                strconv.Itoa(o.width),
			"height":               strconv.Itoa(o.height),
			"footer":               strconv.FormatBool(o.footer),
			"trace":                strconv.FormatBool(o.trace),
			"logFile":              o.logFile,
		},
		Args: append([]string(nil), args...),
	}
	return cfg, warns, nil
}

// LoadArgs parses args against a fresh flag set. Tests use it to supply
// specific args/environment.
func LoadArgs(args []string, environ []string) (Config, []string, error) {
	fs := pflag.NewFlagSet("dirnav", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	opts := RegisterFlags(fs, environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, nil, err
	}
	return opts.Build(args)
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// envOrFields splits a whitespace-separated list; key names never contain
// spaces ("space" names the space bar).
func envOrFields(env map[string]string, key string) []string {
	return strings.Fields(env[key])
}

// Validate checks option combinations that individual flags cannot.
func Validate(cfg Config) error {
	if cfg.App.WatchKeymap && cfg.Keymap.File == "" {
		return fmt.Errorf("--watch-keymap requires --keymap-file")
	}
	return nil
}
