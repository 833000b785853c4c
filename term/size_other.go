//go:build !linux && !darwin

package term

import xterm "golang.org/x/term"

// getWinsize falls back to golang.org/x/term's portable size query on
// platforms without a TIOCGWINSZ ioctl wrapper in x/sys/unix.
func getWinsize(fd int) (width, height int, err error) { return xterm.GetSize(fd) }
