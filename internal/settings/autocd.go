package settings

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// AutocdOff disables entering a lone search match automatically.
const AutocdOff time.Duration = -1

// MaxAutocdTimeout bounds the accepted timeout.
const MaxAutocdTimeout = time.Minute

// ParseAutocdTimeout reads the --autocd-timeout value. "off" or an empty
// value disables the feature; a bare integer is milliseconds; Go duration
// syntax ("750ms", "2s") is accepted too. Anything negative, above
// MaxAutocdTimeout or unparsable yields a warning and AutocdOff.
func ParseAutocdTimeout(value string) (time.Duration, string) {
	v := strings.TrimSpace(value)
	if v == "" || strings.EqualFold(v, "off") {
		return AutocdOff, ""
	}
	var d time.Duration
	if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
		if ms < 0 || ms > MaxAutocdTimeout.Milliseconds() {
			return AutocdOff, autocdWarning(v)
		}
		d = time.Duration(ms) * time.Millisecond
	} else {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return AutocdOff, autocdWarning(v)
		}
		d = parsed
	}
	if d < 0 || d > MaxAutocdTimeout {
		return AutocdOff, autocdWarning(v)
	}
	return d, ""
}

func autocdWarning(v string) string {
	return fmt.Sprintf("Invalid value %q for '--autocd-timeout', expected 'off', milliseconds or a duration up to %s; defaulting to 'off'.", v, MaxAutocdTimeout)
}
