package entitlement

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// BonusGrant is a one-shot permission to generate a prompt without touching
// the daily counter, earned by watching a rewarded ad.
//
// Grants are owned by the caller and live only in memory. A grant that is
// never consumed is simply dropped.
type BonusGrant struct {
	ID       string
	IssuedAt time.Time

	mu       sync.Mutex
	consumed bool
}

func newBonusGrant(now time.Time) *BonusGrant {
	return &BonusGrant{
		ID:       uuid.NewString(),
		IssuedAt: now,
	}
}

// Consume marks the grant used. It returns true only on the first call.
func (g *BonusGrant) Consume() bool {
	if g == nil {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.consumed {
		return false
	}
	g.consumed = true
	return true
}

// Consumed reports whether Consume has already succeeded.
func (g *BonusGrant) Consumed() bool {
	if g == nil {
		return true
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.consumed
}
