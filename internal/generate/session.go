package generate

import (
	"context"
	"errors"
	"fmt"

	"github.com/masadraza1122/pixalpromt/internal/catalog"
	"github.com/masadraza1122/pixalpromt/internal/entitlement"
	"github.com/masadraza1122/pixalpromt/internal/reward"
	"github.com/rs/zerolog"
)

// ErrLimitReached is returned by Session.Generate when the free quota is
// used up and no bonus grant is held.
var ErrLimitReached = errors.New("daily prompt limit reached")

// Quota is the part of the entitlement tracker a Session needs.
type Quota interface {
	UsePrompt(ctx context.Context) (bool, error)
	GrantBonusPrompt() *entitlement.BonusGrant
}

// Source produces prompt text.
type Source interface {
	Generate(ctx context.Context) (string, error)
}

// Session is one visit to a card's detail view. It owns the bonus grant
// earned from a rewarded ad; the grant dies with the session.
type Session struct {
	Card catalog.Card

	quota  Quota
	source Source
	ad     reward.Ad
	log    zerolog.Logger

	grant *entitlement.BonusGrant
	last  string
}

// NewSession starts a detail-view session for card.
func NewSession(card catalog.Card, quota Quota, source Source, ad reward.Ad, log zerolog.Logger) *Session {
	return &Session{
		Card:   card,
		quota:  quota,
		source: source,
		ad:     ad,
		log:    log,
	}
}

// HasBonus reports whether an unconsumed bonus grant is held.
func (s *Session) HasBonus() bool {
	return s.grant != nil && !s.grant.Consumed()
}

// Last returns the most recently generated text.
func (s *Session) Last() string {
	return s.last
}

// Generate spends the held bonus grant if there is one, otherwise charges
// the daily quota, and then produces a prompt.
//
// If the quota is exhausted it returns ErrLimitReached without charging.
// A charge is not refunded when generation itself is cancelled.
func (s *Session) Generate(ctx context.Context) (string, error) {
	if s.grant.Consume() {
		s.log.Debug().Str("grant", s.grant.ID).Str("card", s.Card.ID).Msg("bonus prompt used")
		s.grant = nil
	} else {
		ok, err := s.quota.UsePrompt(ctx)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", ErrLimitReached
		}
	}

	text, err := s.source.Generate(ctx)
	if err != nil {
		return "", fmt.Errorf("generate prompt: %w", err)
	}
	s.last = text
	return text, nil
}

// WatchAd plays the rewarded ad and, once it completes, holds a bonus grant
// for the next Generate. Watching again while a grant is held does not
// stack grants.
func (s *Session) WatchAd(ctx context.Context) error {
	if err := s.ad.Watch(ctx); err != nil {
		return fmt.Errorf("watch ad: %w", err)
	}
	if s.HasBonus() {
		return nil
	}
	s.grant = s.quota.GrantBonusPrompt()
	return nil
}
