package output

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
)

const progressWidth = 40

// Progress is a single line progress bar. On terminals the line is redrawn
// in place; elsewhere only the final state is printed.
type Progress struct {
	mu      sync.Mutex
	w       *Writer
	bar     progress.Model
	total   int
	current int
	done    bool
}

func (w *Writer) NewProgress(total int) *Progress {
	return &Progress{
		w:     w,
		bar:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressWidth)),
		total: total,
	}
}

func (p *Progress) Advance(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done {
		return
	}
	p.current = min(p.current+n, p.total)
	if p.w.IsTerminal() {
		p.w.print("\r" + p.view())
	}
}

func (p *Progress) Current() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *Progress) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done {
		return
	}
	p.done = true
	if p.w.IsTerminal() {
		p.w.print("\r" + p.view() + "\n")
		return
	}
	p.w.println(p.view())
}

func (p *Progress) view() string {
	percent := 1.0
	if p.total > 0 {
		percent = float64(p.current) / float64(p.total)
	}
	return fmt.Sprintf("%s %d/%d", p.bar.ViewAs(percent), p.current, p.total)
}
