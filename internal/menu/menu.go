package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/salescope-dev/salescope/internal/analysis"
)

// Views is the set of analyses the menu can run.
type Views interface {
	Years() []int
	CheckYear(year int) error
	Monthly() error
	Yearly() error
	Products() error
	Signal(year int, withChart bool) error
	Growth(year int) error
	Countries() error
	Summary() error
}

// Option represents a menu choice
type Option struct {
	Number    int
	Title     string
	NeedsYear bool
	Handler   func(year int) error
}

// Menu is the interactive numbered menu.
type Menu struct {
	scanner *bufio.Scanner
	out     io.Writer
	options []Option
	views   Views
	// Echo repeats each answer after its prompt, so transcripts read
	// correctly when input is piped rather than typed.
	Echo bool
}

const exitChoice = 0

// New creates a menu reading answers from in and printing to out.
func New(in io.Reader, out io.Writer, views Views) *Menu {
	m := &Menu{
		scanner: bufio.NewScanner(in),
		out:     out,
		views:   views,
	}

	m.options = []Option{
		{Number: 1, Title: "Monthly Sales Trend", Handler: func(int) error { return views.Monthly() }},
		{Number: 2, Title: "Yearly Sales Trend", Handler: func(int) error { return views.Yearly() }},
		{Number: 3, Title: "Top 10 Products", Handler: func(int) error { return views.Products() }},
		{Number: 4, Title: "Demand Acceleration Signal", NeedsYear: true, Handler: func(y int) error { return views.Signal(y, false) }},
		{Number: 5, Title: "Monthly Growth Rate", NeedsYear: true, Handler: views.Growth},
		{Number: 6, Title: "Country Sales", Handler: func(int) error { return views.Countries() }},
		{Number: 7, Title: "Dataset Summary", Handler: func(int) error { return views.Summary() }},
	}
	return m
}

// Run loops until the user exits or input ends.
func (m *Menu) Run() error {
	for {
		m.printMenu()

		choice, ok, err := m.askNumber("")
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if choice == nil {
			continue
		}
		if *choice == exitChoice {
			return nil
		}

		m.dispatch(*choice)
		fmt.Fprintln(m.out)
	}
}

func (m *Menu) dispatch(choice int) {
	var option *Option
	for i := range m.options {
		if m.options[i].Number == choice {
			option = &m.options[i]
			break
		}
	}
	if option == nil {
		fmt.Fprintln(m.out, "Invalid choice")
		return
	}

	year := 0
	if option.NeedsYear {
		y, ok, err := m.askNumber(m.yearPrompt())
		if err != nil || !ok || y == nil {
			return
		}
		if err := m.views.CheckYear(*y); err != nil {
			fmt.Fprintln(m.out, "Enter valid year")
			return
		}
		year = *y
	}

	if err := option.Handler(year); err != nil {
		if errors.Is(err, analysis.ErrUnknownYear) {
			fmt.Fprintln(m.out, "Enter valid year")
			return
		}
		fmt.Fprintf(m.out, "Error: %v\n", err)
		log.Error().Err(err).Str("menu_option", option.Title).Msg("Menu handler failed")
	}
}

// askNumber prints prompt and reads one integer answer. ok is false at end
// of input; a nil number means the answer was blank or not a number.
func (m *Menu) askNumber(prompt string) (n *int, ok bool, err error) {
	if prompt != "" {
		fmt.Fprint(m.out, prompt)
	}
	if !m.scanner.Scan() {
		if err := m.scanner.Err(); err != nil {
			return nil, false, fmt.Errorf("reading input: %w", err)
		}
		return nil, false, nil
	}

	input := strings.TrimSpace(m.scanner.Text())
	if m.Echo {
		fmt.Fprintln(m.out, input)
	}
	if input == "" {
		return nil, true, nil
	}

	v, err := strconv.Atoi(input)
	if err != nil {
		fmt.Fprintln(m.out, "Please enter a valid number.")
		return nil, true, nil
	}
	return &v, true, nil
}

func (m *Menu) yearPrompt() string {
	years := m.views.Years()
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = strconv.Itoa(y)
	}
	switch len(parts) {
	case 0:
		return "Enter year\n"
	case 1:
		return fmt.Sprintf("Enter year %s\n", parts[0])
	default:
		return fmt.Sprintf("Enter year %s or %s\n", strings.Join(parts[:len(parts)-1], ", "), parts[len(parts)-1])
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, "Enter")
	for _, o := range m.options {
		fmt.Fprintf(m.out, " %d for %s\n", o.Number, o.Title)
	}
	fmt.Fprintf(m.out, " %d to Exit\n", exitChoice)
}
