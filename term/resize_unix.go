//go:build linux || darwin

package term

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/too-tui/too"
)

// startResizeWatch installs a SIGWINCH handler that re-queries the
// terminal size and emits a Resize event. A burst of SIGWINCH signals
// collapses naturally here since each handler iteration only emits the
// size at the time it runs; the application driver's drain loop
// additionally coalesces a run of queued Resize events to the latest one.
func (d *Driver) startResizeWatch() {
	d.sigCh = make(chan os.Signal, 4)
	signal.Notify(d.sigCh, syscall.SIGWINCH)
	go func() {
		for {
			select {
			case <-d.done:
				return
			case _, ok := <-d.sigCh:
				if !ok {
					return
				}
				w, h, err := getWinsize(int(d.in.Fd()))
				if err != nil {
					continue
				}
				d.emit(too.Event{Kind: too.EventResize, Size: too.Vec2{X: float32(w), Y: float32(h)}})
			}
		}
	}()
}

func (d *Driver) stopResizeWatch() {
	if d.sigCh != nil {
		signal.Stop(d.sigCh)
	}
}
