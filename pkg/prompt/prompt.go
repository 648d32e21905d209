package prompt

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/shuldan/artisan/pkg/output"
)

type Prompter interface {
	Ask(question, fallback string) (string, error)
	Secret(question string) (string, error)
	Confirm(question string, initial bool) (bool, error)
	Choice(question string, options []string, initial int) (string, error)
	MultiChoice(question string, options []string) ([]string, error)
	// Anticipate offers options but accepts any answer. A unique prefix of
	// an option is completed to it and an empty answer yields fallback.
	Anticipate(question string, options []string, fallback string) (string, error)
}

// linePrompter asks questions one line at a time. Invalid answers are
// reported and the question is asked again until the input runs out.
type linePrompter struct {
	mu     sync.Mutex
	in     io.Reader
	reader *bufio.Reader
	out    *output.Writer
}

func NewPrompter(in io.Reader, out *output.Writer) Prompter {
	if in == nil {
		in = strings.NewReader("")
	}
	if out == nil {
		out = output.NewWriter(nil)
	}
	return &linePrompter{in: in, reader: bufio.NewReader(in), out: out}
}

func (p *linePrompter) Ask(question, fallback string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.question(question, fallback)
	answer, err := p.readLine(question)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return fallback, nil
	}
	return answer, nil
}

func (p *linePrompter) Secret(question string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.question(question, "")

	if file, ok := p.in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		secret, err := term.ReadPassword(int(file.Fd()))
		p.out.Newline()
		if err != nil {
			return "", ErrReadInput.WithCause(err)
		}
		return string(secret), nil
	}

	return p.readLine(question)
}

func (p *linePrompter) Confirm(question string, initial bool) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	hint := "yes/No"
	if initial {
		hint = "Yes/no"
	}

	for {
		p.question(question+" ("+hint+")", "")
		answer, err := p.readLine(question)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "":
			return initial, nil
		case "y", "yes", "true", "1":
			return true, nil
		case "n", "no", "false", "0":
			return false, nil
		}
		p.out.Error("Please answer yes or no.")
	}
}

func (p *linePrompter) Choice(question string, options []string, initial int) (string, error) {
	if len(options) == 0 {
		return "", ErrNoOptions.WithDetail("question", question)
	}
	if initial < 0 || initial >= len(options) {
		return "", ErrInvalidDefault.
			WithDetail("index", initial).
			WithDetail("count", len(options))
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for {
		p.question(question, options[initial])
		p.listOptions(options)

		answer, err := p.readLine(question)
		if err != nil {
			return "", err
		}
		if answer == "" {
			return options[initial], nil
		}
		if i, ok := optionIndex(options, answer); ok {
			return options[i], nil
		}
		p.out.Error("Value %q is invalid.", answer)
	}
}

// MultiChoice accepts a comma separated list of indexes or option values.
func (p *linePrompter) MultiChoice(question string, options []string) ([]string, error) {
	if len(options) == 0 {
		return nil, ErrNoOptions.WithDetail("question", question)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

retry:
	for {
		p.question(question, "")
		p.listOptions(options)

		answer, err := p.readLine(question)
		if err != nil {
			return nil, err
		}

		var selected []string
		for _, part := range strings.Split(answer, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			i, ok := optionIndex(options, part)
			if !ok {
				p.out.Error("Value %q is invalid.", part)
				continue retry
			}
			selected = append(selected, options[i])
		}
		return selected, nil
	}
}

func (p *linePrompter) Anticipate(question string, options []string, fallback string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.question(question, fallback)
	p.listOptions(options)

	answer, err := p.readLine(question)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return fallback, nil
	}
	if i, ok := optionIndex(options, answer); ok {
		return options[i], nil
	}

	var match string
	for _, option := range options {
		if strings.HasPrefix(option, answer) {
			if match != "" {
				return answer, nil
			}
			match = option
		}
	}
	if match != "" {
		return match, nil
	}
	return answer, nil
}

func (p *linePrompter) question(text, fallback string) {
	if fallback != "" {
		p.out.Info("%s [%s]:", text, fallback)
		return
	}
	p.out.Info("%s:", text)
}

func (p *linePrompter) listOptions(options []string) {
	for i, option := range options {
		p.out.Line("  [%d] %s", i, option)
	}
}

// readLine returns the trimmed next line. A final line without a newline
// still counts; running out of input before any text is ErrNoInput.
func (p *linePrompter) readLine(question string) (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", ErrNoInput.WithDetail("question", question)
		}
		return "", ErrReadInput.WithCause(err)
	}
	return strings.TrimSpace(line), nil
}

func optionIndex(options []string, answer string) (int, bool) {
	for i, option := range options {
		if option == answer {
			return i, true
		}
	}
	if i, err := strconv.Atoi(answer); err == nil && i >= 0 && i < len(options) {
		return i, true
	}
	return 0, false
}
