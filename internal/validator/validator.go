package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/statenav/internal/navigation"
	"github.com/aretw0/statenav/pkg/domain"
	"github.com/aretw0/statenav/pkg/ports"
)

// Error lists the problems that make a graph unusable.
type Error struct {
	Problems []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("found %d errors:\n- %s", len(e.Problems), strings.Join(e.Problems, "\n- "))
}

// Report is the outcome of ValidateGraph.
type Report struct {
	Problems []string
	Warnings []string
}

// Err returns the problems as an *Error, or nil.
func (r *Report) Err() error {
	if len(r.Problems) == 0 {
		return nil
	}
	return &Error{Problems: r.Problems}
}

// ValidateGraph checks start states, dangling references and reachability.
// States nothing can reach from the start states are reported as warnings:
// they may still be entered when the application opens on them.
func ValidateGraph(registry ports.StateRegistry, start []string) *Report {
	report := &Report{}
	states := registry.States()
	if len(states) == 0 {
		report.Problems = append(report.Problems, "graph has no states")
		return report
	}

	var startIDs []domain.StateID
	for _, name := range start {
		s, ok := registry.StateByName(name)
		if !ok {
			report.Problems = append(report.Problems, fmt.Sprintf("start state '%s' not found", name))
			continue
		}
		startIDs = append(startIDs, s.ID)
	}

	for _, s := range states {
		st, ok := registry.Transitions(s.ID)
		if !ok {
			continue
		}
		for i, t := range st.Transitions {
			for _, target := range t.Activate {
				if target.IsConcrete() {
					if _, ok := registry.State(target.ID); !ok {
						report.Problems = append(report.Problems,
							fmt.Sprintf("state '%s' transition %d targets missing state %d", s.Name, i, target.ID))
					}
				}
			}
			for _, id := range t.Exit {
				if _, ok := registry.State(id); !ok {
					report.Problems = append(report.Problems,
						fmt.Sprintf("state '%s' transition %d exits missing state %d", s.Name, i, id))
				}
			}
			if t.HasKind(domain.TargetPrevious) && !s.Overlay && len(s.CanHide) == 0 {
				report.Warnings = append(report.Warnings,
					fmt.Sprintf("state '%s' goes back to a previous state but never hides one", s.Name))
			}
		}
		for _, id := range s.CanHide {
			if _, ok := registry.State(id); !ok {
				report.Problems = append(report.Problems,
					fmt.Sprintf("state '%s' can hide missing state %d", s.Name, id))
			}
		}
	}

	if len(startIDs) > 0 {
		reachable := navigation.NewJointTable(registry).Reachable(startIDs...)
		for _, s := range states {
			if !reachable[s.ID] {
				report.Warnings = append(report.Warnings, fmt.Sprintf("state '%s' is unreachable from the start states", s.Name))
			}
		}
	}
	return report
}
