package keeper

import (
	"sync"

	"github.com/vortexlabs/vortex/x/amm/types"
)

// ReentrancyGuard is a process-wide Idle/Busy lock. Every mutating entry
// point acquires it on entry and releases it on every exit path, so a
// flash-borrow callback (or any other synchronous callout) cannot re-enter
// a mutating operation while one is in flight.
type ReentrancyGuard struct {
	mu   sync.Mutex
	busy bool
}

// NewReentrancyGuard creates a guard in the Idle state.
func NewReentrancyGuard() *ReentrancyGuard {
	return &ReentrancyGuard{}
}

// Enter moves the guard to Busy, or fails if it already is.
func (g *ReentrancyGuard) Enter() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.busy {
		return types.ErrReentrancy.Wrap("a mutating operation is already in flight")
	}
	g.busy = true
	return nil
}

// Exit returns the guard to Idle.
func (g *ReentrancyGuard) Exit() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.busy = false
}
