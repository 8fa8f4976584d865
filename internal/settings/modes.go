package settings

// FileHandleMode controls how plain files appear in the listing.
type FileHandleMode int

const (
	FilesIgnore FileHandleMode = iota
	FilesHide
	FilesMatch
)

func (m FileHandleMode) String() string {
	switch m {
	case FilesHide:
		return "Hide"
	case FilesMatch:
		return "Match"
	default:
		return "Ignore"
	}
}

// NoMatchesMessage is shown when a filtered search leaves nothing to show.
func (m FileHandleMode) NoMatchesMessage() string {
	if m == FilesIgnore {
		return "No folder matching search term."
	}
	return "No matches."
}

// CaseSensitiveMode controls case handling while searching. Smart is
// case-insensitive until the query contains an upper-case letter.
type CaseSensitiveMode int

const (
	CaseIgnore CaseSensitiveMode = iota
	CaseSensitive
	CaseSmart
)

func (m CaseSensitiveMode) String() string {
	switch m {
	case CaseIgnore:
		return "Ignore"
	case CaseSensitive:
		return "Sensitive"
	default:
		return "Smart"
	}
}

// Next cycles Ignore → Sensitive → Smart → Ignore.
func (m CaseSensitiveMode) Next() CaseSensitiveMode {
	return (m + 1) % 3
}

// GapSearchMode selects between substring and subsequence matching, and
// whether a match must start at the beginning of the entry.
type GapSearchMode int

const (
	GapNormal GapSearchMode = iota
	GapNormalAny
	GapFromStart
	GapAny
)

func (m GapSearchMode) String() string {
	switch m {
	case GapNormal:
		return "Normal Search"
	case GapNormalAny:
		return "Normal Search Anywhere"
	case GapAny:
		return "Gap Search Anywhere"
	default:
		return "Gap Search From Start"
	}
}

// Next cycles through the four modes in declaration order.
func (m GapSearchMode) Next() GapSearchMode {
	return (m + 1) % 4
}

// Gapped reports whether characters of the query may be separated by other
// characters in a match.
func (m GapSearchMode) Gapped() bool {
	return m == GapFromStart || m == GapAny
}

// Anywhere reports whether a match may begin after the first character.
func (m GapSearchMode) Anywhere() bool {
	return m == GapNormalAny || m == GapAny
}

// SortMode orders the directory listing.
type SortMode int

const (
	SortName SortMode = iota
	SortCreated
	SortModified
)

func (m SortMode) String() string {
	switch m {
	case SortCreated:
		return "Created"
	case SortModified:
		return "Modified"
	default:
		return "Name"
	}
}
