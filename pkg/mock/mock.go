// Package mock provides scripted hooks for running graphs without a screen.
//
// A Behavior describes how a hook answers: always succeed, always fail, or
// fail a number of times before succeeding. A Binder attaches behaviours to
// the transitions and arrival checks of a loaded graph by state name.
package mock

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/aretw0/statenav/pkg/domain"
)

// Behavior is a scripted hook answer.
type Behavior struct {
	// Fail makes every call fail.
	Fail bool
	// FailFirst fails this many calls, then succeeds.
	FailFirst int
}

var (
	// Succeed always succeeds.
	Succeed = Behavior{}
	// Fail always fails.
	Fail = Behavior{Fail: true}
)

// FailFirst fails n calls, then succeeds.
func FailFirst(n int) Behavior { return Behavior{FailFirst: n} }

// ParseBehavior reads "succeed", "fail" or "flaky:N".
func ParseBehavior(s string) (Behavior, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "succeed", "success", "ok":
		return Succeed, nil
	case "fail", "failure":
		return Fail, nil
	}
	if rest, ok := strings.CutPrefix(s, "flaky:"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n < 0 {
			return Behavior{}, fmt.Errorf("invalid flaky count %q", rest)
		}
		return FailFirst(n), nil
	}
	return Behavior{}, fmt.Errorf("unknown mock behaviour %q", s)
}

func (b Behavior) String() string {
	switch {
	case b.Fail:
		return "fail"
	case b.FailFirst > 0:
		return "flaky:" + strconv.Itoa(b.FailFirst)
	default:
		return "succeed"
	}
}

// Hook returns a hook following the behaviour. Each hook keeps its own call count.
func (b Behavior) Hook() domain.Hook {
	return b.counted(new(atomic.Int64))
}

func (b Behavior) counted(calls *atomic.Int64) domain.Hook {
	return func(ctx context.Context) bool {
		n := calls.Add(1)
		if b.Fail {
			return false
		}
		return n > int64(b.FailFirst)
	}
}

type outgoingKey struct {
	state string
	index int
}

// Binder implements ports.HookBinder with scripted behaviours.
// Unscripted hooks succeed. It is safe for concurrent use.
type Binder struct {
	mu       sync.Mutex
	outgoing map[outgoingKey]Behavior
	arrival  map[string]Behavior
	calls    map[string]*atomic.Int64
}

// NewBinder creates a binder where every hook succeeds.
func NewBinder() *Binder {
	return &Binder{
		outgoing: make(map[outgoingKey]Behavior),
		arrival:  make(map[string]Behavior),
		calls:    make(map[string]*atomic.Int64),
	}
}

// SetOutgoing scripts the index-th transition leaving state.
func (b *Binder) SetOutgoing(state string, index int, behavior Behavior) *Binder {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.outgoing[outgoingKey{state, index}] = behavior
	return b
}

// SetArrival scripts the arrival check of state.
func (b *Binder) SetArrival(state string, behavior Behavior) *Binder {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.arrival[state] = behavior
	return b
}

// Outgoing returns the hook for the index-th transition leaving state.
func (b *Binder) Outgoing(state string, index int) domain.Hook {
	b.mu.Lock()
	defer b.mu.Unlock()
	behavior := b.outgoing[outgoingKey{state, index}]
	return behavior.counted(b.counter(state + "#" + strconv.Itoa(index)))
}

// Arrival returns the arrival hook of state.
func (b *Binder) Arrival(state string) domain.Hook {
	b.mu.Lock()
	defer b.mu.Unlock()
	behavior := b.arrival[state]
	return behavior.counted(b.counter(state + "@arrival"))
}

// Calls reports how often the index-th transition leaving state ran.
func (b *Binder) Calls(state string, index int) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return int(b.counter(state + "#" + strconv.Itoa(index)).Load())
}

// ArrivalCalls reports how often the arrival check of state ran.
func (b *Binder) ArrivalCalls(state string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return int(b.counter(state + "@arrival").Load())
}

func (b *Binder) counter(key string) *atomic.Int64 {
	c, ok := b.calls[key]
	if !ok {
		c = new(atomic.Int64)
		b.calls[key] = c
	}
	return c
}
