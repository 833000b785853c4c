package too

import "sync"

// debugQueue is an App's diagnostic queue (each App owns one, shared by
// that App's render passes; there is no process-wide queue): a mutex-guarded buffer
// of strings pushed during build/render, drained each frame and rendered
// as a last pass over the top layer. Plain string accumulation with no
// structured logging library, matching a bare tree-dumper idiom rather
// than a logger.
type debugQueue struct {
	mu    sync.Mutex
	lines []string
}

func newDebugQueue() *debugQueue { return &debugQueue{} }

func (q *debugQueue) push(s string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.lines = append(q.lines, s)
}

// drainInto renders any queued lines as a bottom overlay panel over the
// full draw rect and clears the queue, completing the "drained each frame"
// lifecycle.
func (q *debugQueue) drainInto(d *drawDriver) {
	q.mu.Lock()
	lines := q.lines
	q.lines = nil
	q.mu.Unlock()

	if len(lines) == 0 {
		return
	}

	rect := d.surface.Rect()
	style := Style{Fg: SetColor(d.palette.Foreground), Bg: SetColor(d.palette.Surface)}
	y := rect.Max.Y - len(lines)
	if y < rect.Min.Y {
		y = rect.Min.Y
		lines = lines[len(lines)-(rect.Max.Y-rect.Min.Y):]
	}
	for _, line := range lines {
		x := rect.Min.X
		for _, cluster := range segmentGraphemes(line) {
			cell := NewGraphemeCell(cluster, style)
			w := cell.Width()
			if w == 0 || x+w > rect.Max.X {
				break
			}
			d.surface.Set(pos2(x, y), cell)
			x += w
		}
		y++
	}
}

// clear drops any queued lines without rendering them, called when the
// application driver shuts down.
func (q *debugQueue) clear() {
	q.mu.Lock()
	q.lines = nil
	q.mu.Unlock()
}
