package term

import "io"

// Mouse tracking is not part of the core Writer contract (which only
// covers drawing operations), so these helpers write the raw CSI
// sequences directly instead of going through it.
const (
	enableMouseSeq  = "\x1b[?1002h\x1b[?1003h\x1b[?1006h"
	disableMouseSeq = "\x1b[?1006l\x1b[?1003l\x1b[?1002l"
)

// EnableMouseReporting turns on SGR-encoded button, drag, and motion
// reporting (modes 1002/1003/1006), matching the Config.MouseCapture
// option's "enable mouse reporting" effect.
func EnableMouseReporting(w io.Writer) error {
	_, err := io.WriteString(w, enableMouseSeq)
	return err
}

// DisableMouseReporting reverses EnableMouseReporting, called on shutdown.
func DisableMouseReporting(w io.Writer) error {
	_, err := io.WriteString(w, disableMouseSeq)
	return err
}
