// Package action defines the closed set of user-triggerable actions and the
// input contexts a key binding can be restricted to.
package action

import (
	"fmt"
	"strings"
)

// Action identifies an operation a key binding can trigger.
type Action int

const (
	ChangeDir Action = iota
	ChangeDirParent
	ChangeDirRoot
	ChangeDirHome
	ChangeDirAndExit
	CursorUp
	CursorDown
	CursorUpScreen
	CursorDownScreen
	CursorTop
	CursorBottom
	EraseSearchChar
	ClearSearch
	ChangeFilterSearchMode
	ChangeCaseSensitiveMode
	ChangeGapSearchMode
	ChangeSortMode
	RefreshListing
	Help
	Exit
	ExitWithoutCd
	// None marks a binding as disabled.
	None

	actionCount
)

type info struct {
	name string
	desc string
}

// Indexed by Action; a missing entry leaves a zero value, which the tests
// reject.
var actions = [actionCount]info{
	ChangeDir:               {"ChangeDir", "Enter directory under the cursor."},
	ChangeDirParent:         {"ChangeDirParent", "Go to the parent directory."},
	ChangeDirRoot:           {"ChangeDirRoot", "Go to the root directory."},
	ChangeDirHome:           {"ChangeDirHome", "Go to the home directory."},
	ChangeDirAndExit:        {"ChangeDirAndExit", "Enter the directory under the cursor and exit."},
	CursorUp:                {"CursorUp", "Move the cursor up by one step."},
	CursorDown:              {"CursorDown", "Move the cursor down by one step."},
	CursorUpScreen:          {"CursorUpScreen", "Move the cursor up by one screenful."},
	CursorDownScreen:        {"CursorDownScreen", "Move the cursor down by one screenful."},
	CursorTop:               {"CursorTop", "Move the cursor to the first item in the listing."},
	CursorBottom:            {"CursorBottom", "Move the cursor to the last item in the listing."},
	EraseSearchChar:         {"EraseSearchChar", "Erase one character from the search."},
	ClearSearch:             {"ClearSearch", "Clear the search."},
	ChangeFilterSearchMode:  {"ChangeFilterSearchMode", "Toggle the filter-search mode."},
	ChangeCaseSensitiveMode: {"ChangeCaseSensitiveMode", "Change the case-sensitive mode."},
	ChangeGapSearchMode:     {"ChangeGapSearchMode", "Change the gap-search mode."},
	ChangeSortMode:          {"ChangeSortMode", "Change the sorting mode."},
	RefreshListing:          {"RefreshListing", "Refresh the directory listing."},
	Help:                    {"Help", "Show the help screen."},
	Exit:                    {"Exit", "Exit the program."},
	ExitWithoutCd:           {"ExitWithoutCd", "Exit the program without changing the working directory."},
	None:                    {"None", "Disable this mapping."},
}

// All returns every action in declaration order, including None.
func All() []Action {
	out := make([]Action, 0, actionCount)
	for a := Action(0); a < actionCount; a++ {
		out = append(out, a)
	}
	return out
}

// Valid reports whether a is one of the declared actions.
func (a Action) Valid() bool {
	return a >= 0 && a < actionCount
}

// String returns the machine name used in configuration and in the help
// document's shortcut table.
func (a Action) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actions[a].name
}

// Description returns the one-line human description.
func (a Action) Description() string {
	if !a.Valid() {
		return ""
	}
	return actions[a].desc
}

// Parse resolves a machine name (case-insensitive) to an Action.
func Parse(name string) (Action, error) {
	name = strings.TrimSpace(name)
	for a := Action(0); a < actionCount; a++ {
		if strings.EqualFold(actions[a].name, name) {
			return a, nil
		}
	}
	return None, fmt.Errorf("unknown action %q", name)
}
