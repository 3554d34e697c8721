package navigation

import (
	"log/slog"

	"github.com/aretw0/statenav/internal/logging"
	"github.com/aretw0/statenav/pkg/domain"
	"github.com/aretw0/statenav/pkg/ports"
)

// PathManager scores, sorts and prunes candidate paths.
// Scores are always recomputed from the registry, never maintained incrementally,
// because states may be added, removed or reconfigured between navigations.
type PathManager struct {
	registry ports.StateRegistry
	logger   *slog.Logger
}

// NewPathManager creates a manager over the registry.
func NewPathManager(registry ports.StateRegistry, logger *slog.Logger) *PathManager {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &PathManager{registry: registry, logger: logger}
}

// UpdateScore sets path.Score to the sum of the path scores of its states,
// each occurrence counted, plus the costs of its transitions.
// States missing from the registry contribute 0.
// The score equals the plain sum of state path scores only when every
// transition on the path has zero cost.
func (m *PathManager) UpdateScore(path *domain.Path) {
	score := 0
	for _, id := range path.States {
		state, ok := m.registry.State(id)
		if !ok {
			m.logger.Warn("inconsistent graph: path references unknown state", "state_id", id)
			continue
		}
		score += state.PathScore
	}
	for _, t := range path.Transitions {
		if t != nil {
			score += t.Cost
		}
	}
	path.Score = score
}

// UpdateScores rescores every path and sorts the collection ascending.
func (m *PathManager) UpdateScores(paths *domain.Paths) {
	if paths.Empty() {
		return
	}
	for _, p := range paths.Paths {
		m.UpdateScore(p)
	}
	paths.Sort()
}

// CleanPaths drops paths crossing the failed transition start or missing every
// active state, trims the survivors to start where we are, and rescores them.
// The result is never nil; an empty result means no recovery is possible.
func (m *PathManager) CleanPaths(active map[domain.StateID]bool, paths *domain.Paths, failedStart domain.StateID) *domain.Paths {
	cleaned := paths.Clean(active, failedStart)
	m.UpdateScores(cleaned)
	m.logger.Debug("cleaned paths",
		"before", paths.Len(),
		"after", cleaned.Len(),
		"failed_start", failedStart,
	)
	return cleaned
}
