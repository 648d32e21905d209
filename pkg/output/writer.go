package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"
)

// KeyWidth is the column the descriptions of KeyValue lines start at.
const KeyWidth = 20

// Writer prints styled console output. Colors are only emitted when the
// underlying writer is a terminal. It is safe for concurrent use.
type Writer struct {
	mu       sync.Mutex
	out      io.Writer
	renderer *lipgloss.Renderer
	styles   styles
	terminal bool
}

func NewWriter(out io.Writer) *Writer {
	if out == nil {
		out = io.Discard
	}
	r := lipgloss.NewRenderer(out)
	return &Writer{
		out:      out,
		renderer: r,
		styles:   newStyles(r),
		terminal: isTerminal(out),
	}
}

func (w *Writer) Out() io.Writer {
	return w.out
}

func (w *Writer) IsTerminal() bool {
	return w.terminal
}

func (w *Writer) Line(format string, args ...any) {
	w.println(sprintf(format, args...))
}

func (w *Writer) Newline() {
	w.println("")
}

func (w *Writer) Info(format string, args ...any) {
	w.println(w.styles.info.Render(sprintf(format, args...)))
}

func (w *Writer) Comment(format string, args ...any) {
	w.println(w.styles.comment.Render(sprintf(format, args...)))
}

func (w *Writer) Error(format string, args ...any) {
	w.println(w.styles.errorText.Render(sprintf(format, args...)))
}

func (w *Writer) Warn(format string, args ...any) {
	w.println(w.styles.warnBadge.Render(" WARNING ") + " " + sprintf(format, args...))
}

func (w *Writer) Alert(format string, args ...any) {
	w.println(w.styles.alertBadge.Render(" ALERT ") + " " + sprintf(format, args...))
}

func (w *Writer) Title(text string) {
	w.println(w.styles.title.Render(text))
}

// KeyValue prints an indented key padded to KeyWidth followed by value.
func (w *Writer) KeyValue(key, value string) {
	width := max(KeyWidth, lipgloss.Width(key)+2)
	padding := strings.Repeat(" ", width-lipgloss.Width(key))
	w.println("  " + w.styles.key.Render(key) + padding + value)
}

// Diagnostic renders message inside a red box, used for errors that end an
// invocation.
func (w *Writer) Diagnostic(message string) {
	w.println("\n" + w.styles.diagnostic.Render(message) + "\n")
}

func (w *Writer) Table(head []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(w.styles.border).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return w.styles.header
			}
			return w.styles.cell
		}).
		Headers(head...).
		Rows(rows...)

	w.println(t.String())
}

// Write makes Writer usable as a plain io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.out.Write(p)
}

func (w *Writer) println(s string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = fmt.Fprintln(w.out, s)
}

func (w *Writer) print(s string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = fmt.Fprint(w.out, s)
}

func sprintf(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// Banner prints the application name in a rounded box with the version
// underneath.
func (w *Writer) Banner(name, version string) {
	box := w.renderer.NewStyle().
		Bold(true).
		Foreground(colorGreen).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorGray).
		Padding(0, 2).
		Render(name)

	if version != "" {
		box = lipgloss.JoinVertical(lipgloss.Left, box, " "+w.styles.comment.Render("version "+version))
	}
	w.println(box)
}
