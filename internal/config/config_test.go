package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/dirnav/internal/action"
	"github.com/atomicstack/dirnav/internal/keys"
	"github.com/atomicstack/dirnav/internal/settings"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, warns, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warns) != 0 {
		t.Fatalf("unexpected warnings %v", warns)
	}
	if cfg.Settings.CaseSensitiveMode != settings.CaseSmart {
		t.Fatalf("expected smart case default, got %v", cfg.Settings.CaseSensitiveMode)
	}
	if len(cfg.Settings.Keybinds) == 0 {
		t.Fatal("expected default keybinds")
	}
	if !cfg.App.ShowFooter {
		t.Fatal("expected footer on by default")
	}
	if cfg.Flags["width"] != "0" {
		t.Fatalf("expected width flag recorded, got %q", cfg.Flags["width"])
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{
		"DIRNAV_FILES=hide",
		"DIRNAV_SORT=created",
		"DIRNAV_WIDTH=90",
		"DIRNAV_TRACE=true",
		"DIRNAV_LOG_FILE=/tmp/dirnav-env.log",
	}
	cfg, _, err := LoadArgs([]string{"--files", "match", "--width=120"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Settings.FileHandleMode != settings.FilesMatch {
		t.Fatalf("expected flag to win over env, got %v", cfg.Settings.FileHandleMode)
	}
	if cfg.Settings.SortMode != settings.SortCreated {
		t.Fatalf("expected sort from env, got %v", cfg.Settings.SortMode)
	}
	if cfg.App.Width != 120 {
		t.Fatalf("expected width 120, got %d", cfg.App.Width)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/dirnav-env.log" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadArgsCollectsAllWarnings(t *testing.T) {
	args := []string{"-F", "x", "-c", "y", "-g", "z", "-d", "-m", "bogus", "--autocd-timeout", "forever"}
	_, warns, err := LoadArgs(args, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warns) != 6 {
		t.Fatalf("expected 6 warnings, got %d: %s", len(warns), strings.Join(warns, "\n"))
	}
}

func TestLoadArgsMapSpecs(t *testing.T) {
	env := []string{"DIRNAV_MAP=ctrl-x:Exit alt-q:None"}
	cfg, warns, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warns) != 0 {
		t.Fatalf("unexpected warnings %v", warns)
	}
	km := cfg.Settings.Keybinds
	if a, _ := km.Lookup(keys.MustParse("ctrl-x"), false); a != action.Exit {
		t.Fatalf("expected ctrl-x bound to Exit, got %v", a)
	}
	if _, ok := km.Lookup(keys.MustParse("alt-q"), false); ok {
		t.Fatal("expected alt-q unbound")
	}

	cfg, _, err = LoadArgs([]string{"--clear-default-keymap", "-m", "q:Exit", "-m", "?:Search:Help"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Settings.Keybinds) != 2 {
		t.Fatalf("expected flags to replace env specs, got %v", cfg.Settings.Keybinds)
	}
}

func TestLoadArgsKeymapFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.yaml")
	if err := os.WriteFile(path, []byte("clear_defaults: true\nbindings:\n  - key: x\n    action: Exit\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, _, err := LoadArgs([]string{"--keymap-file", path, "--watch-keymap"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Settings.Keybinds) != 1 {
		t.Fatalf("expected keymap from file, got %v", cfg.Settings.Keybinds)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	if _, _, err := LoadArgs([]string{"--keymap-file", filepath.Join(t.TempDir(), "missing.yaml")}, nil); err == nil {
		t.Fatal("expected missing keymap file to fail")
	}
}

func TestLoadArgsRejectsNegativeSize(t *testing.T) {
	if _, _, err := LoadArgs([]string{"--width", "-1"}, nil); err == nil {
		t.Fatal("expected negative width to fail")
	}
	if _, _, err := LoadArgs([]string{"--height", "-2"}, nil); err == nil {
		t.Fatal("expected negative height to fail")
	}
}

func TestLoadArgsUnknownFlag(t *testing.T) {
	if _, _, err := LoadArgs([]string{"--socket", "x"}, nil); err == nil {
		t.Fatal("expected unknown flag error")
	}
}

func TestValidateWatchRequiresFile(t *testing.T) {
	cfg, _, err := LoadArgs([]string{"--watch-keymap"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestEnvHelpersIgnoreMalformedValues(t *testing.T) {
	env := parseEnv([]string{"A=1", "B=yes", "C", "", "D=x=y"})
	if envOrInt(env, "B", 7) != 7 {
		t.Fatal("expected int fallback")
	}
	if envOrBool(env, "B", true) != true {
		t.Fatal("expected bool fallback")
	}
	if envOrInt(env, "A", 0) != 1 {
		t.Fatal("expected parsed int")
	}
	if env["D"] != "x=y" {
		t.Fatalf("expected value split on first '=', got %q", env["D"])
	}
	if _, ok := env["C"]; ok {
		t.Fatal("expected malformed entry skipped")
	}
}
