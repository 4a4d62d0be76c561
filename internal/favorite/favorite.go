// Package favorite keeps the user's favorite prompt cards.
package favorite

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/masadraza1122/pixalpromt/internal/catalog"
	"github.com/masadraza1122/pixalpromt/internal/kvstore"
	"github.com/rs/zerolog"
)

// Key is the storage key holding the JSON array of favorite card IDs.
const Key = "@pixalprompt_favorites"

// Set is the persisted set of favorite card IDs. Memory changes only after
// the durable write succeeds.
type Set struct {
	store kvstore.Store
	log   zerolog.Logger

	mu  sync.Mutex
	ids map[string]bool
}

// Load reads the favorites from store. A read failure or corrupt value
// yields an empty set.
func Load(ctx context.Context, store kvstore.Store, log zerolog.Logger) *Set {
	s := &Set{store: store, log: log, ids: map[string]bool{}}

	raw, ok, err := store.Get(ctx, Key)
	if err != nil {
		log.Warn().Err(err).Msg("favorites unreadable, starting empty")
		return s
	}
	if !ok {
		return s
	}

	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		log.Warn().Err(err).Msg("favorites corrupt, starting empty")
		return s
	}
	for _, id := range list {
		s.ids[id] = true
	}
	return s
}

// Has reports whether id is a favorite.
func (s *Set) Has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ids[id]
}

// Len returns the number of favorites.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// IDs returns the favorite IDs sorted lexically, as persisted. Use Cards
// for catalog order.
func (s *Set) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedLocked(s.ids)
}

func (s *Set) sortedLocked(ids map[string]bool) []string {
	out := make([]string, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Cards returns the favorite cards in catalog order.
func (s *Set) Cards(c *catalog.Catalog) []catalog.Card {
	return c.Filter(s.IDs())
}

// Add marks id as a favorite. Adding an existing favorite is a no-op.
func (s *Set) Add(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ids[id] {
		return nil
	}
	return s.commitLocked(ctx, id, true)
}

// Remove unmarks id. Removing a missing favorite is a no-op.
func (s *Set) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ids[id] {
		return nil
	}
	return s.commitLocked(ctx, id, false)
}

// Toggle flips id and returns whether it is now a favorite.
func (s *Set) Toggle(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	want := !s.ids[id]
	if err := s.commitLocked(ctx, id, want); err != nil {
		return !want, err
	}
	return want, nil
}

func (s *Set) commitLocked(ctx context.Context, id string, on bool) error {
	next := make(map[string]bool, len(s.ids)+1)
	for k := range s.ids {
		next[k] = true
	}
	if on {
		next[id] = true
	} else {
		delete(next, id)
	}

	data, err := json.Marshal(s.sortedLocked(next))
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, Key, string(data)); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	s.ids = next
	return nil
}
