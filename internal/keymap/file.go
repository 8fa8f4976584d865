package keymap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/dirnav/internal/action"
	"github.com/atomicstack/dirnav/internal/keys"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var readFile = os.ReadFile

// fileConfig is the on-disk keymap layout, shared by YAML and TOML:
//
//	clear_defaults: false
//	bindings:
//	  - key: ctrl-a
//	    context: Search
//	    action: ClearSearch
type fileConfig struct {
	ClearDefaults bool          `yaml:"clear_defaults" toml:"clear_defaults"`
	Bindings      []fileBinding `yaml:"bindings" toml:"bindings"`
}

type fileBinding struct {
	Key     string `yaml:"key" toml:"key"`
	Context string `yaml:"context,omitempty" toml:"context,omitempty"`
	Action  string `yaml:"action" toml:"action"`
}

// File is a decoded keymap file.
type File struct {
	Path          string
	ClearDefaults bool
	Entries       []Entry
}

// LoadFile reads a keymap from a .yaml/.yml or .toml file. Unreadable or
// undecodable files are errors; individual bad entries are skipped and
// reported as warnings.
func LoadFile(path string) (*File, []string, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read keymap file: %w", err)
	}
	var cfg fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return nil, nil, fmt.Errorf("keymap file %s: unsupported extension %q (want .yaml, .yml or .toml)", path, ext)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("parse keymap file %s: %w", path, err)
	}

	f := &File{Path: path, ClearDefaults: cfg.ClearDefaults}
	var warns []string
	for i, fb := range cfg.Bindings {
		entry, err := fb.entry()
		if err != nil {
			warns = append(warns, fmt.Sprintf("%s: binding %d ignored: %v", path, i+1, err))
			continue
		}
		f.Entries = append(f.Entries, entry)
	}
	return f, warns, nil
}

func (fb fileBinding) entry() (Entry, error) {
	key, err := keys.Parse(fb.Key)
	if err != nil {
		return Entry{}, err
	}
	ctx := action.ContextNone
	if strings.TrimSpace(fb.Context) != "" {
		if ctx, err = action.ParseContext(fb.Context); err != nil {
			return Entry{}, err
		}
	}
	act, err := action.Parse(fb.Action)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Key: key, Context: ctx, Action: act}, nil
}
