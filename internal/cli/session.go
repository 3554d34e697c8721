package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"facette.io/natsort"
	"github.com/aretw0/statenav"
	"github.com/aretw0/statenav/pkg/domain"
	"github.com/aretw0/statenav/pkg/session"
)

// ErrNavigationFailed is returned when a target could not be opened.
var ErrNavigationFailed = errors.New("navigation failed")

// RunSession drives a persisted session interactively and saves it on exit,
// including after an interruption.
func RunSession(ctx context.Context, p *Printer, in io.Reader, manager *session.Manager, sessionID string, headless bool) error {
	engine := manager.Engine()
	snap, err := manager.LoadOrStart(ctx, sessionID)
	if err != nil {
		return err
	}
	if !headless {
		p.System("Session '%s' active.", sessionID)
	}

	s := engine.Restore(snap)
	runner := statenav.NewRunner(NewInterruptibleReader(in, ctx.Done()), p.Writer())
	runner.Headless = headless
	runErr := runner.Run(ctx, engine, s)

	if err := manager.Save(context.WithoutCancel(ctx), sessionID, s.Snapshot()); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	if isInterrupted(runErr) && !headless {
		p.System("Interrupted with %s active.", strings.Join(engine.ActiveStateNames(s), ", "))
	}
	return handleExecutionError(runErr)
}

// Open opens each target in turn on a persisted session.
// It stops at the first target that cannot be reached.
func Open(ctx context.Context, p *Printer, manager *session.Manager, sessionID string, targets ...string) error {
	for _, target := range targets {
		result, err := manager.Open(ctx, sessionID, target)
		if err != nil {
			p.Fail("open %s: %v", target, err)
			return err
		}
		active := strings.Join(result.Active, ", ")
		if !result.OK {
			p.Fail("open %s (active: %s)", target, active)
			return fmt.Errorf("%w: %s", ErrNavigationFailed, target)
		}
		p.OK("open %s (active: %s)", target, active)
	}
	return nil
}

// PrintPaths lists the candidate paths from s to target, best first.
func PrintPaths(p *Printer, engine *statenav.Engine, s *statenav.Session, target string) error {
	paths, err := engine.Paths(s, target)
	if err != nil {
		return err
	}
	if paths.Empty() {
		p.Fail("no path to %s", target)
		return nil
	}
	for i, path := range paths.Paths {
		fmt.Fprintf(p.Writer(), "%d. %s (score %d)\n", i+1, strings.Join(names(engine, path.States), " -> "), path.Score)
	}
	return nil
}

// PrintStates lists the graph's states in natural order, marking what the
// session shows and hides when s is not nil.
func PrintStates(p *Printer, engine *statenav.Engine, s *statenav.Session) {
	byName := make(map[string]*domain.State)
	var list []string
	for _, state := range engine.Inspect() {
		byName[state.Name] = state
		list = append(list, state.Name)
	}
	natsort.Sort(list)

	for _, name := range list {
		state := byName[name]
		var tags []string
		if state.Overlay {
			tags = append(tags, "overlay")
		}
		if state.Blocking {
			tags = append(tags, "blocking")
		}
		if state.PathScore > 0 {
			tags = append(tags, fmt.Sprintf("score %d", state.PathScore))
		}
		line := name
		if len(tags) > 0 {
			line += " (" + strings.Join(tags, ", ") + ")"
		}

		switch {
		case s != nil && s.IsActive(state.ID):
			p.OK("%s", line)
		case s != nil && s.Visibility().IsHidden(state.ID):
			fmt.Fprintf(p.Writer(), "~ %s [hidden]\n", line)
		default:
			fmt.Fprintf(p.Writer(), "  %s\n", line)
		}
	}
}

func names(engine *statenav.Engine, ids []domain.StateID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		if state, ok := engine.Registry().State(id); ok {
			out[i] = state.Name
		} else {
			out[i] = fmt.Sprintf("(%d)", id)
		}
	}
	return out
}
