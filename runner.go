package statenav

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/statenav/pkg/domain"
)

// Runner drives an engine from line-oriented commands read from Input.
// This allows for easy testing and integration with different frontends (CLI, scripts).
//
// Commands:
//
//	open <state>    navigate to a state (a bare state name does the same)
//	close <state>   close a state and restore what it concealed
//	paths <state>   list candidate paths, best first
//	active          list the active states
//	quit            stop
type Runner struct {
	Input    io.Reader
	Output   io.Writer
	Headless bool
}

// NewRunner creates a Runner over the given IO.
func NewRunner(in io.Reader, out io.Writer) *Runner {
	return &Runner{Input: in, Output: out}
}

// Run executes commands against the session until quit or end of input.
// Unknown states are reported and the loop continues; IO failures stop it.
func (r *Runner) Run(ctx context.Context, engine *Engine, s *Session) error {
	if r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}
	lineReader := bufio.NewReader(r.Input)
	writer := r.Output

	if !r.Headless {
		fmt.Fprintln(writer, "--- statenav (Runner) ---")
		fmt.Fprintf(writer, "active: %s\n", strings.Join(engine.ActiveStateNames(s), ", "))
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !r.Headless {
			fmt.Fprint(writer, "> ")
		}
		text, err := lineReader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("input error: %w", err)
		}
		eof := err != nil

		command, arg, _ := strings.Cut(strings.TrimSpace(text), " ")
		arg = strings.TrimSpace(arg)
		switch command {
		case "":
		case "quit", "exit":
			if !r.Headless {
				fmt.Fprintln(writer, "Bye!")
			}
			return nil
		case "active":
			fmt.Fprintf(writer, "active: %s\n", strings.Join(engine.ActiveStateNames(s), ", "))
		case "paths":
			r.paths(engine, s, arg)
		case "close":
			closed, err := engine.CloseState(ctx, s, arg)
			r.report(engine, s, "close", arg, closed, err)
		case "open":
			ok, err := engine.OpenState(ctx, s, arg)
			r.report(engine, s, "open", arg, ok, err)
		default:
			ok, err := engine.OpenState(ctx, s, strings.TrimSpace(text))
			r.report(engine, s, "open", strings.TrimSpace(text), ok, err)
		}

		if eof {
			return nil
		}
	}
}

func (r *Runner) report(engine *Engine, s *Session, verb, name string, ok bool, err error) {
	switch {
	case errors.Is(err, domain.ErrStateNotFound):
		fmt.Fprintf(r.Output, "unknown state %q\n", name)
	case err != nil:
		fmt.Fprintf(r.Output, "%s %s: %v\n", verb, name, err)
	case ok:
		fmt.Fprintf(r.Output, "%s %s: ok (active: %s)\n", verb, name, strings.Join(engine.ActiveStateNames(s), ", "))
	default:
		fmt.Fprintf(r.Output, "%s %s: failed (active: %s)\n", verb, name, strings.Join(engine.ActiveStateNames(s), ", "))
	}
}

func (r *Runner) paths(engine *Engine, s *Session, name string) {
	paths, err := engine.Paths(s, name)
	if err != nil {
		fmt.Fprintf(r.Output, "unknown state %q\n", name)
		return
	}
	if paths.Empty() {
		fmt.Fprintf(r.Output, "no path to %s\n", name)
		return
	}
	for i, p := range paths.Paths {
		names := make([]string, len(p.States))
		for j, id := range p.States {
			names[j] = stateName(engine, id)
		}
		fmt.Fprintf(r.Output, "%d. %s (score %d)\n", i+1, strings.Join(names, " -> "), p.Score)
	}
}

func stateName(engine *Engine, id domain.StateID) string {
	if st, ok := engine.registry.State(id); ok {
		return st.Name
	}
	return fmt.Sprintf("(%d)", id)
}
