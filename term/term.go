// Package term is the external terminal I/O driver: raw-mode toggling, OS
// event ingest, and escape-sequence parsing into the core's Event stream.
// It is a client of the too core (it imports too for the event/key types
// it produces) rather than part of the core itself.
package term

import (
	"bufio"
	"os"

	xterm "golang.org/x/term"

	"github.com/too-tui/too"
)

// RawMode puts fd into raw mode (no echo, no line buffering, no signal
// generation) and returns a restore function, backed by golang.org/x/term
// instead of hand-rolled termios ioctls.
func RawMode(fd int) (restore func() error, err error) {
	state, err := xterm.MakeRaw(fd)
	if err != nil {
		return func() error { return nil }, err
	}
	return func() error { return xterm.Restore(fd, state) }, nil
}

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd int) bool { return xterm.IsTerminal(fd) }

// Size returns the current terminal dimensions in columns/rows.
func Size(fd int) (width, height int, err error) { return getWinsize(fd) }

// NewWriter wraps out with the core's ANSI writer implementation, the
// concrete satisfier of the too.Writer contract this package's callers
// hand to too.App.
func NewWriter(out *os.File) too.Writer { return too.NewANSIWriter(out) }

// Driver reads OS terminal events (key presses, mouse reports, resize,
// focus, paste) and exposes them as a channel of
// too.Event; a single producer goroutine is the only concurrency this
// package introduces. It owns no rendering state.
type Driver struct {
	in     *os.File
	events chan too.Event
	done   chan struct{}
	sigCh  chan os.Signal
}

// NewDriver constructs a Driver reading from in (typically os.Stdin).
func NewDriver(in *os.File) *Driver {
	return &Driver{
		in:     in,
		events: make(chan too.Event, 256),
		done:   make(chan struct{}),
	}
}

// Events returns the channel events are delivered on. The channel is
// closed when the producer goroutine exits (EOF, read error, or Stop).
func (d *Driver) Events() <-chan too.Event { return d.events }

// Start launches the producer goroutine(s): a blocking stdin reader feeding
// a byte-stream parser, and (where supported) a SIGWINCH-driven resize
// watcher.
func (d *Driver) Start() {
	go d.readLoop()
	d.startResizeWatch()
}

// Stop terminates the producer goroutines. Events already queued on the
// channel are still deliverable; no new events are produced after Stop
// returns.
func (d *Driver) Stop() {
	select {
	case <-d.done:
	default:
		close(d.done)
	}
	d.stopResizeWatch()
}

func (d *Driver) emit(ev too.Event) {
	select {
	case d.events <- ev:
	case <-d.done:
	}
}

// readLoop blocks on stdin reads and feeds a parser that turns raw bytes
// into too.Event values. On EOF or read error it emits a synthetic Quit
// and closes the channel so the main loop can treat it as a clean
// shutdown signal.
func (d *Driver) readLoop() {
	defer close(d.events)
	r := bufio.NewReaderSize(d.in, 4096)
	p := newParser()
	buf := make([]byte, 4096)
	for {
		select {
		case <-d.done:
			return
		default:
		}
		n, err := r.Read(buf)
		if n > 0 {
			for _, ev := range p.feed(buf[:n]) {
				d.emit(ev)
			}
		}
		if err != nil {
			// EOF and any other read error both mean disconnection.
			d.emit(too.Event{Kind: too.EventQuit})
			return
		}
	}
}
