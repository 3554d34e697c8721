package domain

// Snapshot is the persisted view of a navigation session.
type Snapshot struct {
	SessionID string `json:"session_id"`

	// Active lists the active state ids in ascending order.
	Active []StateID `json:"active"`

	// Hidden maps an active overlay to the states it conceals.
	Hidden map[StateID][]StateID `json:"hidden,omitempty"`

	// Sealed carries an encrypted snapshot when an encrypting store wrote it.
	// Active and Hidden are empty in that case.
	Sealed []byte `json:"sealed,omitempty"`
}

// NewSnapshot creates an empty snapshot for a session.
func NewSnapshot(sessionID string) *Snapshot {
	return &Snapshot{
		SessionID: sessionID,
		Active:    []StateID{},
		Hidden:    make(map[StateID][]StateID),
	}
}

// Clone deep-copies the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	out := &Snapshot{
		SessionID: s.SessionID,
		Active:    append([]StateID{}, s.Active...),
		Hidden:    make(map[StateID][]StateID, len(s.Hidden)),
	}
	for k, v := range s.Hidden {
		out.Hidden[k] = append([]StateID{}, v...)
	}
	if s.Sealed != nil {
		out.Sealed = append([]byte{}, s.Sealed...)
	}
	return out
}
