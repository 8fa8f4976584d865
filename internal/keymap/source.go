package keymap

import "strings"

// Source describes where the active keymap comes from. Layers apply in
// order: built-in defaults (unless cleared), the keymap file, then the
// command-line mapping specs.
type Source struct {
	ClearDefaults bool
	File          string
	Specs         []string
}

// Build assembles a fresh Map. Invalid entries are skipped and returned as
// warnings; only a keymap file that cannot be read or decoded is an error.
func (s Source) Build() (Map, []string, error) {
	var warns []string
	var file *File
	if path := strings.TrimSpace(s.File); path != "" {
		f, fileWarns, err := LoadFile(path)
		if err != nil {
			return nil, nil, err
		}
		file = f
		warns = append(warns, fileWarns...)
	}

	m := Map{}
	if !s.ClearDefaults && (file == nil || !file.ClearDefaults) {
		m = Default()
	}
	if file != nil {
		for _, e := range file.Entries {
			m.Apply(e)
		}
	}
	for _, spec := range s.Specs {
		if strings.TrimSpace(spec) == "" {
			continue
		}
		e, err := ParseSpec(spec)
		if err != nil {
			warns = append(warns, "ignoring --map: "+err.Error())
			continue
		}
		m.Apply(e)
	}
	return m, warns, nil
}
