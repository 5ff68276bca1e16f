package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Prompter reads form input line by line. Required fields re-prompt until
// valid; io.EOF surfaces when the input closes.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (p *Prompter) read(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// Line is a required text field.
func (p *Prompter) Line(label string) (string, error) {
	for {
		value, err := p.read(label)
		if err != nil {
			return "", err
		}
		if value != "" {
			return value, nil
		}
		fmt.Fprintln(p.out, "This field is required.")
	}
}

// Optional returns an empty string when the field is skipped.
func (p *Prompter) Optional(label string) (string, error) {
	return p.read(label + " (optional)")
}

func (p *Prompter) Int(label string, min int) (int, error) {
	for {
		value, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(value)
		if convErr != nil || n < min {
			fmt.Fprintf(p.out, "Enter a whole number of at least %d.\n", min)
			continue
		}
		return n, nil
	}
}

func (p *Prompter) Float(label string, min float64) (float64, error) {
	for {
		value, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		f, convErr := strconv.ParseFloat(value, 64)
		if convErr != nil || f < min {
			fmt.Fprintf(p.out, "Enter an amount of at least %g.\n", min)
			continue
		}
		return f, nil
	}
}

// Date enforces the basic form constraint of a lower bound, nothing more.
func (p *Prompter) Date(label string, notBefore time.Time) (time.Time, error) {
	for {
		value, err := p.Line(label + " (YYYY-MM-DD)")
		if err != nil {
			return time.Time{}, err
		}
		t, parseErr := time.Parse(dateLayout, value)
		if parseErr != nil {
			fmt.Fprintln(p.out, "Dates are entered as YYYY-MM-DD.")
			continue
		}
		if !notBefore.IsZero() && t.Before(notBefore) {
			fmt.Fprintf(p.out, "Date must not be before %s.\n", notBefore.Format(dateLayout))
			continue
		}
		return t, nil
	}
}

// Choice reads a menu selection in [min, max].
func (p *Prompter) Choice(label string, min, max int) (int, error) {
	for {
		value, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(value)
		if convErr != nil || n < min || n > max {
			fmt.Fprintf(p.out, "Choose a number between %d and %d.\n", min, max)
			continue
		}
		return n, nil
	}
}
