//go:build linux || darwin

package term

import "golang.org/x/sys/unix"

// getWinsize queries the terminal's column/row count via TIOCGWINSZ,
// using golang.org/x/sys/unix's portable ioctl wrapper instead of a
// hand-rolled syscall.Syscall(SYS_IOCTL, ...) call per-platform, since
// x/sys covers both linux and darwin with one call site.
func getWinsize(fd int) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
