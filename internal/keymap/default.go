package keymap

import (
	"github.com/atomicstack/dirnav/internal/action"
	"github.com/atomicstack/dirnav/internal/keys"
)

type defaultBinding struct {
	key    string
	ctx    action.Context
	action action.Action
}

var defaultBindings = []defaultBinding{
	{"enter", action.ContextNone, action.ChangeDir},
	{"right", action.ContextNone, action.ChangeDir},
	{"space", action.ContextNotSearch, action.ChangeDir},
	{"alt-down", action.ContextNone, action.ChangeDir},

	{"backspace", action.ContextNotSearch, action.ChangeDirParent},
	{"left", action.ContextNone, action.ChangeDirParent},
	{"-", action.ContextNotSearch, action.ChangeDirParent},
	{"alt-up", action.ContextNone, action.ChangeDirParent},

	{"~", action.ContextNotSearch, action.ChangeDirHome},
	{"ctrl-home", action.ContextNone, action.ChangeDirHome},

	{"/", action.ContextNotSearch, action.ChangeDirRoot},
	{"alt-r", action.ContextNone, action.ChangeDirRoot},

	{"alt-enter", action.ContextNone, action.ChangeDirAndExit},

	{"up", action.ContextNone, action.CursorUp},
	{"alt-k", action.ContextNone, action.CursorUp},
	{"down", action.ContextNone, action.CursorDown},
	{"alt-j", action.ContextNone, action.CursorDown},
	{"pgup", action.ContextNone, action.CursorUpScreen},
	{"ctrl-u", action.ContextNone, action.CursorUpScreen},
	{"pgdown", action.ContextNone, action.CursorDownScreen},
	{"ctrl-d", action.ContextNone, action.CursorDownScreen},
	{"home", action.ContextNone, action.CursorTop},
	{"alt-g", action.ContextNone, action.CursorTop},
	{"end", action.ContextNone, action.CursorBottom},
	{"alt-shift-g", action.ContextNone, action.CursorBottom},

	{"backspace", action.ContextSearch, action.EraseSearchChar},
	{"esc", action.ContextSearch, action.ClearSearch},

	{"ctrl-f", action.ContextNone, action.ChangeFilterSearchMode},
	{"ctrl-s", action.ContextNone, action.ChangeCaseSensitiveMode},
	{"ctrl-g", action.ContextNone, action.ChangeGapSearchMode},
	{"ctrl-o", action.ContextNone, action.ChangeSortMode},
	{"ctrl-r", action.ContextNone, action.RefreshListing},

	{"?", action.ContextNotSearch, action.Help},
	{"f1", action.ContextNone, action.Help},

	{"esc", action.ContextNotSearch, action.Exit},
	{"alt-q", action.ContextNone, action.Exit},
	{"ctrl-c", action.ContextNone, action.ExitWithoutCd},
}

// Default returns a fresh copy of the built-in bindings.
func Default() Map {
	m := make(Map, len(defaultBindings))
	for _, d := range defaultBindings {
		m.Set(keys.MustParse(d.key), d.ctx, d.action)
	}
	return m
}
