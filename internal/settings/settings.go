// Package settings turns raw option values into the Settings aggregate.
// Unknown values never fail: each one produces a warning and the documented
// default is used instead, so every problem can be reported at once.
package settings

import (
	"strings"
	"time"

	"github.com/atomicstack/dirnav/internal/keymap"
)

// Raw holds option values as given on the command line or in the
// environment.
type Raw struct {
	Files         string
	CaseSensitive string
	GapSearch     string
	Sort          string
	AutocdTimeout string
	HistoryFile   string
	FilterSearch  bool
	FoldersOnly   bool
	NoFoldersOnly bool
	Mouse         bool
}

// DefaultRaw returns the option values used when nothing is given.
func DefaultRaw() Raw {
	return Raw{
		Files:         "ignore",
		CaseSensitive: "smart",
		GapSearch:     "gap-from-start",
		Sort:          "name",
		AutocdTimeout: "off",
	}
}

type Settings struct {
	FileHandleMode    FileHandleMode
	FilterSearch      bool
	CaseSensitiveMode CaseSensitiveMode
	SortMode          SortMode
	GapSearchMode     GapSearchMode
	AutocdTimeout     time.Duration
	HistoryFile       string
	MouseEnable       bool
	Keybinds          keymap.Map
}

// Default returns the settings used when no option is given.
func Default() Settings {
	s, _ := Parse(DefaultRaw())
	s.Keybinds = keymap.Default()
	return s
}

const (
	warnFiles         = "Invalid value for '--files' / '-F', defaulting to 'ignore'."
	warnCaseSensitive = "Invalid value for '--case-sensitive' / '-c', defaulting to 'smart'."
	warnGapSearch     = "Invalid value for '--gap-search' / '-g', defaulting to 'gap-from-start'."
	warnSort          = "Invalid value for '--sort' / '-s', defaulting to 'name'."
	warnFoldersOnly   = "The option '--folders-only' / '-d' has been deprecated, please use '--files hide' instead."
	warnNoFoldersOnly = "The option '--no-folders-only' / '-D' has been deprecated, please use '--files ignore' or '--files match' instead."
	warnFilterSearch  = "The option '--filter-search' / '-f' has been deprecated, please use '--files match' instead."
)

// Parse converts raw values. Keybinds is left nil; the caller fills it from
// a keymap.Source.
func Parse(raw Raw) (Settings, []string) {
	var s Settings
	var warns []string

	switch strings.TrimSpace(raw.Files) {
	case "ignore", "i":
		s.FileHandleMode = FilesIgnore
	case "hide", "h":
		s.FileHandleMode = FilesHide
	case "match", "m":
		s.FileHandleMode = FilesMatch
	default:
		warns = append(warns, warnFiles)
		s.FileHandleMode = FilesIgnore
	}

	if raw.FoldersOnly {
		s.FileHandleMode = FilesHide
		warns = append(warns, warnFoldersOnly)
	}
	if raw.NoFoldersOnly {
		s.FileHandleMode = FilesIgnore
		warns = append(warns, warnNoFoldersOnly)
	}
	if raw.FilterSearch {
		s.FilterSearch = true
		warns = append(warns, warnFilterSearch)
	}

	switch strings.TrimSpace(raw.CaseSensitive) {
	case "ignore", "i":
		s.CaseSensitiveMode = CaseIgnore
	case "sensitive", "s":
		s.CaseSensitiveMode = CaseSensitive
	case "smart", "S":
		s.CaseSensitiveMode = CaseSmart
	default:
		warns = append(warns, warnCaseSensitive)
		s.CaseSensitiveMode = CaseSmart
	}

	switch strings.TrimSpace(raw.GapSearch) {
	case "normal", "n":
		s.GapSearchMode = GapNormal
	case "normal-any", "N":
		s.GapSearchMode = GapNormalAny
	case "gap-from-start", "g":
		s.GapSearchMode = GapFromStart
	case "gap-any", "G":
		s.GapSearchMode = GapAny
	default:
		warns = append(warns, warnGapSearch)
		s.GapSearchMode = GapFromStart
	}

	switch strings.ToLower(strings.TrimSpace(raw.Sort)) {
	case "name", "n":
		s.SortMode = SortName
	case "created", "c":
		s.SortMode = SortCreated
	case "modified", "m":
		s.SortMode = SortModified
	default:
		warns = append(warns, warnSort)
		s.SortMode = SortName
	}

	timeout, warn := ParseAutocdTimeout(raw.AutocdTimeout)
	s.AutocdTimeout = timeout
	if warn != "" {
		warns = append(warns, warn)
	}

	s.HistoryFile = strings.TrimSpace(raw.HistoryFile)
	s.MouseEnable = raw.Mouse
	return s, warns
}
