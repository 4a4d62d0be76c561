// Package entitlement tracks the free-tier daily prompt quota, the premium
// flag and rewarded-ad bonus grants.
package entitlement

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/masadraza1122/pixalpromt/internal/kvstore"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultDailyLimit is the number of free generations per calendar day.
const DefaultDailyLimit = 3

// Storage keys. They must stay stable across releases.
const (
	KeyPremium       = "@pixalprompt_is_premium"
	KeyPromptsUsed   = "@pixalprompt_prompts_used"
	KeyLastResetDate = "@pixalprompt_last_reset_date"
)

// ErrPersist wraps every durable write failure returned by the tracker.
var ErrPersist = errors.New("persist entitlement state")

// State is a point-in-time view of the tracker.
type State struct {
	Premium          bool
	PromptsUsedToday int
	DailyLimit       int
	LastResetDate    Date
}

// Tracker decides whether the user may generate another prompt today.
//
// One Tracker is built at startup and shared by reference. Every mutation
// holds the tracker lock across its durable write, so concurrent callers are
// serialized and the counter never passes the limit.
type Tracker struct {
	store kvstore.Store
	now   func() time.Time
	log   zerolog.Logger
	limit int

	mu        sync.Mutex
	premium   bool
	used      int
	lastReset Date
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock replaces time.Now. The returned time's location decides where
// day boundaries fall.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithDailyLimit overrides DefaultDailyLimit. Values below 1 are ignored.
func WithDailyLimit(limit int) Option {
	return func(t *Tracker) {
		if limit >= 1 {
			t.limit = limit
		}
	}
}

// WithLogger sets the logger used for non-fatal storage problems.
func WithLogger(log zerolog.Logger) Option {
	return func(t *Tracker) { t.log = log }
}

// Load reads the persisted state and returns a ready tracker. It never
// fails: unreadable or corrupt values fall back to defaults, and a stale or
// missing reset date triggers the daily reset.
func Load(ctx context.Context, store kvstore.Store, opts ...Option) *Tracker {
	t := &Tracker{
		store: store,
		now:   time.Now,
		log:   zerolog.Nop(),
		limit: DefaultDailyLimit,
	}
	for _, opt := range opts {
		opt(t)
	}

	var premiumRaw, usedRaw, dateRaw string
	var premiumOK, usedOK, dateOK bool

	g, gctx := errgroup.WithContext(ctx)
	read := func(key string, value *string, ok *bool) {
		g.Go(func() error {
			v, found, err := store.Get(gctx, key)
			if err != nil {
				t.log.Warn().Err(err).Str("key", key).Msg("read failed, using default")
				return nil
			}
			*value, *ok = v, found
			return nil
		})
	}
	read(KeyPremium, &premiumRaw, &premiumOK)
	read(KeyPromptsUsed, &usedRaw, &usedOK)
	read(KeyLastResetDate, &dateRaw, &dateOK)
	_ = g.Wait()

	t.premium = premiumOK && premiumRaw == "true"

	today := t.today()
	var stored Date
	if dateOK {
		d, err := ParseDate(dateRaw)
		if err != nil {
			t.log.Warn().Err(err).Msg("corrupt reset date, forcing daily reset")
		} else {
			stored = d
		}
	}

	if stored != today {
		t.lastReset = today
		t.used = 0
		if err := t.persistDailyReset(ctx, today); err != nil {
			t.log.Warn().Err(err).Msg("daily reset not persisted")
		}
		t.log.Debug().Str("date", today.String()).Msg("daily quota reset")
		return t
	}

	t.lastReset = stored
	if usedOK {
		t.used = t.parseUsed(usedRaw)
	}
	return t
}

func (t *Tracker) parseUsed(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		t.log.Warn().Str("value", raw).Msg("corrupt prompt counter, using 0")
		return 0
	}
	if n > t.limit {
		return t.limit
	}
	return n
}

func (t *Tracker) today() Date {
	return DateOf(t.now())
}

// persistDailyReset zeroes the counter before stamping the date, so a
// half-applied reset still reads as stale on the next load.
func (t *Tracker) persistDailyReset(ctx context.Context, today Date) error {
	if err := t.store.Set(ctx, KeyPromptsUsed, "0"); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	if err := t.store.Set(ctx, KeyLastResetDate, today.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

// usedLocked returns the counter, reading a stale one as zero.
func (t *Tracker) usedLocked() int {
	if t.lastReset != t.today() {
		return 0
	}
	return t.used
}

// CanGeneratePrompt reports whether a generation would be allowed right now.
func (t *Tracker) CanGeneratePrompt() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.premium || t.usedLocked() < t.limit
}

// UsePrompt charges one generation against today's quota.
//
// It returns true when the generation may proceed and false when the daily
// limit is already reached. Premium users are never charged. A failed write
// returns an ErrPersist error and leaves the in-memory count unchanged.
func (t *Tracker) UsePrompt(ctx context.Context) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.premium {
		return true, nil
	}

	if today := t.today(); t.lastReset != today {
		if err := t.persistDailyReset(ctx, today); err != nil {
			return false, err
		}
		t.lastReset = today
		t.used = 0
		t.log.Debug().Str("date", today.String()).Msg("daily quota reset")
	}

	if t.used >= t.limit {
		return false, nil
	}

	next := t.used + 1
	if err := t.store.Set(ctx, KeyPromptsUsed, strconv.Itoa(next)); err != nil {
		return false, fmt.Errorf("%w: %w", ErrPersist, err)
	}
	t.used = next
	return true, nil
}

// GrantBonusPrompt issues a one-shot grant after a rewarded ad completed.
// The tracker keeps no record of it; the caller holds and consumes it.
func (t *Tracker) GrantBonusPrompt() *BonusGrant {
	g := newBonusGrant(t.now())
	t.log.Debug().Str("grant", g.ID).Msg("bonus prompt granted")
	return g
}

// UpgradeToPremium sets the premium flag. Calling it again is a no-op.
func (t *Tracker) UpgradeToPremium(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.premium {
		return nil
	}
	if err := t.store.Set(ctx, KeyPremium, "true"); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	t.premium = true
	t.log.Info().Msg("upgraded to premium")
	return nil
}

// Reset removes all persisted entitlement state and restores defaults. The
// next load (or UsePrompt) performs a fresh daily reset.
func (t *Tracker) Reset(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.store.RemoveAll(ctx, KeyPremium, KeyPromptsUsed, KeyLastResetDate); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	t.premium = false
	t.used = 0
	t.lastReset = Date{}
	t.log.Info().Msg("entitlement state reset")
	return nil
}

// IsPremium reports the premium flag.
func (t *Tracker) IsPremium() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.premium
}

// PromptsUsedToday returns today's count. A counter left over from an
// earlier day reads as zero.
func (t *Tracker) PromptsUsedToday() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.usedLocked()
}

// DailyLimit returns the configured free quota.
func (t *Tracker) DailyLimit() int {
	return t.limit
}

// Remaining returns the free generations left today, or -1 for premium.
func (t *Tracker) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.premium {
		return -1
	}
	r := t.limit - t.usedLocked()
	if r < 0 {
		return 0
	}
	return r
}

// NextReset returns when the free quota next refills.
func (t *Tracker) NextReset() time.Time {
	return nextMidnight(t.now())
}

// Snapshot returns the current state.
func (t *Tracker) Snapshot() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return State{
		Premium:          t.premium,
		PromptsUsedToday: t.usedLocked(),
		DailyLimit:       t.limit,
		LastResetDate:    t.lastReset,
	}
}
