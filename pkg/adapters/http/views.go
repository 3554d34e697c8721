package http

import (
	"strconv"

	"facette.io/natsort"
	"github.com/aretw0/statenav/pkg/domain"
	"github.com/aretw0/statenav/pkg/ports"
	"github.com/aretw0/statenav/pkg/session"
)

// namer turns registry ids into the names the API speaks.
type namer struct {
	registry ports.StateRegistry
}

func (n namer) name(id domain.StateID) string {
	if s, ok := n.registry.State(id); ok {
		return s.Name
	}
	return "#" + strconv.FormatInt(int64(id), 10)
}

func (n namer) names(ids []domain.StateID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, n.name(id))
	}
	return out
}

func (n namer) state(s *domain.State) State {
	view := State{
		Id:        int64(s.ID),
		Name:      s.Name,
		PathScore: s.PathScore,
	}
	if s.Overlay {
		view.Overlay = ptr(true)
	}
	if s.Blocking {
		view.Blocking = ptr(true)
	}
	if len(s.CanHide) > 0 {
		view.CanHide = ptr(n.names(s.CanHide))
	}
	if len(s.Objects) > 0 {
		view.Objects = ptr(s.Objects)
	}
	return view
}

func (n namer) states() []State {
	states := n.registry.States()
	byName := make(map[string]*domain.State, len(states))
	names := make([]string, 0, len(states))
	for _, s := range states {
		byName[s.Name] = s
		names = append(names, s.Name)
	}
	natsort.Sort(names)

	out := make([]State, 0, len(names))
	for _, name := range names {
		out = append(out, n.state(byName[name]))
	}
	return out
}

func (n namer) edges() []Edge {
	out := []Edge{}
	for _, s := range n.registry.States() {
		st, ok := n.registry.Transitions(s.ID)
		if !ok {
			continue
		}
		for _, t := range st.Transitions {
			for _, target := range t.Activate {
				edge := Edge{
					From: s.Name,
					To:   target.Kind.String(),
					Kind: target.Kind.String(),
				}
				if target.IsConcrete() {
					edge.To = n.name(target.ID)
				}
				if t.Cost != 0 {
					edge.Cost = ptr(t.Cost)
				}
				if t.StaysVisible {
					edge.StaysVisible = ptr(true)
				}
				if len(t.Exit) > 0 {
					edge.Exit = ptr(n.names(t.Exit))
				}
				out = append(out, edge)
			}
		}
	}
	return out
}

func (n namer) hidden(hidden map[domain.StateID][]domain.StateID) *HiddenStates {
	var out HiddenStates
	for overlay, ids := range hidden {
		if len(ids) == 0 {
			continue
		}
		if out == nil {
			out = make(HiddenStates)
		}
		out[n.name(overlay)] = n.names(ids)
	}
	if out == nil {
		return nil
	}
	return &out
}

func (n namer) session(snap *domain.Snapshot) Session {
	return Session{
		SessionId: snap.SessionID,
		Active:    n.names(snap.Active),
		Hidden:    n.hidden(snap.Hidden),
	}
}

func (n namer) paths(sessionID, target string, paths *domain.Paths) Paths {
	view := Paths{SessionId: sessionID, Target: target, Paths: []Path{}}
	for _, p := range paths.Paths {
		view.Paths = append(view.Paths, Path{States: n.names(p.States), Score: p.Score})
	}
	return view
}

func (n namer) result(r *session.Result) NavigationResult {
	view := NavigationResult{
		SessionId: r.SessionID,
		Target:    r.Target,
		Ok:        r.OK,
		Active:    r.Active,
	}
	if view.Active == nil {
		view.Active = []string{}
	}
	if r.Snapshot != nil {
		view.Hidden = n.hidden(r.Snapshot.Hidden)
	}
	if r.Diff != nil {
		view.Diff = diff(r.Diff)
	}
	return view
}

// diff keeps the numeric ids of the domain diff, which is what SSE subscribers receive.
func diff(d *domain.SnapshotDiff) *SnapshotDiff {
	view := &SnapshotDiff{SessionId: d.SessionID}
	if len(d.Activated) > 0 {
		view.Activated = ptr(ids(d.Activated))
	}
	if len(d.Deactivated) > 0 {
		view.Deactivated = ptr(ids(d.Deactivated))
	}
	if len(d.Hidden) > 0 {
		hidden := make(map[string][]int64, len(d.Hidden))
		for overlay, states := range d.Hidden {
			hidden[strconv.FormatInt(int64(overlay), 10)] = ids(states)
		}
		view.Hidden = &hidden
	}
	return view
}

func ids(in []domain.StateID) []int64 {
	out := make([]int64, 0, len(in))
	for _, id := range in {
		out = append(out, int64(id))
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
