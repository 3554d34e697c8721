package graph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/statenav/pkg/domain"
	"github.com/aretw0/statenav/pkg/ports"
)

// GraphOverlay contains dynamic session data to visualize on the graph.
type GraphOverlay struct {
	Active []domain.StateID
	// Hidden maps an active overlay to the states it conceals.
	Hidden map[domain.StateID][]domain.StateID
	// Path highlights a candidate path, e.g. the best one to a target.
	Path []domain.StateID
}

// OverlayFromSnapshot builds an overlay showing a session's screen.
func OverlayFromSnapshot(snap *domain.Snapshot) *GraphOverlay {
	if snap == nil {
		return nil
	}
	c := snap.Clone()
	return &GraphOverlay{Active: c.Active, Hidden: c.Hidden}
}

const previousNode = "previous"

// GenerateMermaid produces a Mermaid flowchart of the state graph.
// It applies semantic styling:
// - Overlay: ([Stadium])
// - Blocking: {{Hexagon}}
// - Default: [Rectangle]
// Edges that keep the source visible are dotted, exits are crossed, and
// Previous targets point at the hidden states when the overlay knows them.
func GenerateMermaid(registry ports.StateRegistry, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	usesPrevious := false
	for _, state := range registry.States() {
		safeID := nodeID(state.ID)

		opener, closer := "[", "]"
		switch {
		case state.Blocking:
			opener, closer = "{{", "}}"
		case state.Overlay:
			opener, closer = "([", "])"
		}

		label := escape(state.Name)
		if state.PathScore > 0 {
			label = fmt.Sprintf("%s <br/> score %d", label, state.PathScore)
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, label, closer)

		st, ok := registry.Transitions(state.ID)
		if !ok {
			continue
		}
		for _, t := range st.Transitions {
			for _, target := range t.Activate {
				switch target.Kind {
				case domain.TargetConcrete:
					fmt.Fprintf(&sb, "    %s %s %s\n", safeID, arrow(t, ""), nodeID(target.ID))
				case domain.TargetCurrent:
					fmt.Fprintf(&sb, "    %s %s %s\n", safeID, arrow(t, "refresh"), safeID)
				case domain.TargetPrevious:
					var hidden []domain.StateID
					if overlay != nil {
						hidden = overlay.Hidden[state.ID]
					}
					if len(hidden) == 0 {
						usesPrevious = true
						fmt.Fprintf(&sb, "    %s %s %s\n", safeID, arrow(t, "back"), previousNode)
						continue
					}
					for _, id := range hidden {
						fmt.Fprintf(&sb, "    %s %s %s\n", safeID, arrow(t, "back"), nodeID(id))
					}
				}
			}
			for _, id := range t.Exit {
				fmt.Fprintf(&sb, "    %s --x %s\n", safeID, nodeID(id))
			}
		}
	}
	if usesPrevious {
		fmt.Fprintf(&sb, "    %s((\"previous\"))\n", previousNode)
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef path fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef hidden fill:#eeeeee,stroke:#9e9e9e,stroke-dasharray:4,color:#000;\n")
		sb.WriteString("    classDef active fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		// Later classes win, so active is written last.
		styled := make(map[domain.StateID]string)
		var order []domain.StateID
		mark := func(id domain.StateID, class string) {
			if _, ok := styled[id]; !ok {
				order = append(order, id)
			}
			styled[id] = class
		}
		for _, id := range overlay.Path {
			mark(id, "path")
		}
		for _, ids := range overlay.Hidden {
			for _, id := range ids {
				mark(id, "hidden")
			}
		}
		for _, id := range overlay.Active {
			mark(id, "active")
		}
		for _, id := range order {
			fmt.Fprintf(&sb, "    class %s %s;\n", nodeID(id), styled[id])
		}
	}

	return sb.String()
}

func arrow(t *domain.Transition, label string) string {
	if t.Cost > 0 {
		if label != "" {
			label += " "
		}
		label += "cost " + strconv.Itoa(t.Cost)
	}
	if t.StaysVisible {
		if label == "" {
			return "-.->"
		}
		return fmt.Sprintf("-. \"%s\" .->", label)
	}
	if label == "" {
		return "-->"
	}
	return fmt.Sprintf("-- \"%s\" -->", label)
}

func nodeID(id domain.StateID) string {
	return "s" + strconv.FormatInt(int64(id), 10)
}

func escape(name string) string {
	return strings.ReplaceAll(name, "\"", "'")
}
