// Package agent is the operator console of the vendor and consumer agents:
// a line-oriented command loop over the agent's use cases.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"nearby/internal/errors"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var errUsage = errors.New("usage")

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

// Console reads commands from in and writes results to out.
type Console struct {
	in       io.Reader
	out      io.Writer
	logger   *slog.Logger
	prompt   string
	commands map[string]command
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func newConsole(in io.Reader, out io.Writer, prompt string, logger *slog.Logger) *Console {
	return &Console{
		in:       in,
		out:      out,
		logger:   logger,
		prompt:   prompt,
		commands: make(map[string]command),
	}
}

func (c *Console) handle(name, usage string, run func(ctx context.Context, args []string) error) {
	c.commands[name] = command{usage: usage, run: run}
}

// Run executes commands until in is exhausted, "quit" is entered or ctx ends.
func (c *Console) Run(ctx context.Context) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	c.showPrompt()
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return errors.WithStack(err)
				default:
					return nil
				}
			}
			if !c.exec(ctx, line) {
				return nil
			}
			c.showPrompt()
		}
	}
}

// exec runs one command line. It reports false when the console should stop.
func (c *Console) exec(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	name, args := strings.ToLower(fields[0]), fields[1:]
	switch name {
	case "quit", "exit":
		return false
	case "help":
		c.help()

		return true
	}

	cmd, ok := c.commands[name]
	if !ok {
		c.failf("unknown command %q, try help", name)

		return true
	}

	if err := cmd.run(ctx, args); err != nil {
		if errors.Is(err, errUsage) {
			c.failf("usage: %s %s", name, cmd.usage)
		} else {
			c.failf("%s: %v", name, err)
		}
	}

	return true
}

func (c *Console) help() {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names)+2)
	for _, name := range names {
		rows = append(rows, []string{name, c.commands[name].usage})
	}
	rows = append(rows, []string{"help", ""}, []string{"quit", ""})

	c.table([]string{"command", "arguments"}, rows)
}

func (c *Console) showPrompt() {
	if c.prompt != "" {
		fmt.Fprint(c.out, c.prompt)
	}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

func (c *Console) failf(format string, args ...any) {
	fmt.Fprintln(c.out, errorStyle.Render(fmt.Sprintf(format, args...)))
}

func (c *Console) table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})

	fmt.Fprintln(c.out, t.Render())
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %q", s)
	}

	return v, nil
}

func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}

	return false, errUsage
}

func parseCoordinates(args []string) (float64, float64, error) {
	if len(args) != 2 {
		return 0, 0, errUsage
	}
	lat, err := parseFloat(args[0])
	if err != nil {
		return 0, 0, err
	}
	lng, err := parseFloat(args[1])
	if err != nil {
		return 0, 0, err
	}

	return lat, lng, nil
}
