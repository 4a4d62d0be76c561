// Package catalog holds the built-in prompt cards shown in the browser.
package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrNotFound is returned when no card has the requested ID.
	ErrNotFound = errors.New("prompt not found")
	// ErrUnknownCategory is returned for a category name that does not exist.
	ErrUnknownCategory = errors.New("unknown category")
)

// Card is a single prompt tile.
type Card struct {
	ID       string
	Category string
	Title    string
	Subtitle string
	ImageURL string
	// Rating is nil for cards that have not been rated.
	Rating *float64
}

// HasRating reports whether the card carries a rating.
func (c Card) HasRating() bool {
	return c.Rating != nil
}

// RatingString formats the rating with one decimal, or "" if unrated.
func (c Card) RatingString() string {
	if c.Rating == nil {
		return ""
	}
	return fmt.Sprintf("%.1f", *c.Rating)
}

func rating(v float64) *float64 { return &v }

var categories = []string{"New", "Trending", "Portrait", "Cinematic"}

var cards = []Card{
	// New
	{ID: "new1", Category: "New", Title: "AI Future Vision", Subtitle: "Latest Tech", ImageURL: "https://images.unsplash.com/photo-1635241161466-541f065683ba?w=400&h=500&fit=crop", Rating: rating(4.8)},
	{ID: "new2", Category: "New", Title: "Neon Dreams", Subtitle: "Cyberpunk Style", ImageURL: "https://images.unsplash.com/photo-1620121692029-d088224ddc74?w=400&h=500&fit=crop", Rating: rating(4.7)},
	{ID: "new3", Category: "New", Title: "Digital Art", Subtitle: "Abstract AI", ImageURL: "https://images.unsplash.com/photo-1614680376573-df3480f0c6ff?w=400&h=500&fit=crop", Rating: rating(4.5)},
	{ID: "new4", Category: "New", Title: "3D Render", Subtitle: "Modern Design", ImageURL: "https://images.unsplash.com/photo-1634017839464-5c339ebe3cb4?w=400&h=500&fit=crop", Rating: nil},
	{ID: "new5", Category: "New", Title: "Space Explorer", Subtitle: "Sci-Fi", ImageURL: "https://images.unsplash.com/photo-1618172193622-ae2d025f4032?w=400&h=500&fit=crop", Rating: rating(4.9)},
	{ID: "new6", Category: "New", Title: "AI Generated", Subtitle: "Unique Art", ImageURL: "https://images.unsplash.com/photo-1617791160505-6f00504e3519?w=400&h=500&fit=crop", Rating: nil},
	// Trending
	{ID: "trend1", Category: "Trending", Title: "PixalPrompt: AI Photo", Subtitle: "Most Popular", ImageURL: "https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?w=400&h=500&fit=crop", Rating: rating(4.9)},
	{ID: "trend2", Category: "Trending", Title: "Beauty Portrait", Subtitle: "Trending Now", ImageURL: "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=400&h=500&fit=crop", Rating: rating(4.8)},
	{ID: "trend3", Category: "Trending", Title: "Professional Look", Subtitle: "Hot Today", ImageURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=500&fit=crop", Rating: rating(4.7)},
	{ID: "trend4", Category: "Trending", Title: "Fashion Style", Subtitle: "Top Rated", ImageURL: "https://images.unsplash.com/photo-1539571696357-5a69c17a67c6?w=400&h=500&fit=crop", Rating: rating(4.8)},
	{ID: "trend5", Category: "Trending", Title: "Natural Beauty", Subtitle: "Viral", ImageURL: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400&h=500&fit=crop", Rating: rating(4.9)},
	{ID: "trend6", Category: "Trending", Title: "Dream Scene", Subtitle: "Trending", ImageURL: "https://images.unsplash.com/photo-1469854523086-cc02fe5d8800?w=400&h=500&fit=crop", Rating: rating(4.6)},
	// Portrait
	{ID: "port1", Category: "Portrait", Title: "Classic Portrait", Subtitle: "Professional", ImageURL: "https://images.unsplash.com/photo-1531746020798-e6953c6e8e04?w=400&h=500&fit=crop", Rating: rating(4.7)},
	{ID: "port2", Category: "Portrait", Title: "Studio Shot", Subtitle: "High Quality", ImageURL: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=400&h=500&fit=crop", Rating: rating(4.8)},
	{ID: "port3", Category: "Portrait", Title: "Natural Light", Subtitle: "Outdoor", ImageURL: "https://images.unsplash.com/photo-1488426862026-3ee34a7d66df?w=400&h=500&fit=crop", Rating: rating(4.6)},
	{ID: "port4", Category: "Portrait", Title: "Male Portrait", Subtitle: "Modern Style", ImageURL: "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=400&h=500&fit=crop", Rating: rating(4.5)},
	{ID: "port5", Category: "Portrait", Title: "Business Portrait", Subtitle: "Corporate", ImageURL: "https://images.unsplash.com/photo-1524504388940-b1c1722653e1?w=400&h=500&fit=crop", Rating: rating(4.7)},
	{ID: "port6", Category: "Portrait", Title: "Artistic Portrait", Subtitle: "Creative", ImageURL: "https://images.unsplash.com/photo-1552374196-c4e7ffc6e126?w=400&h=500&fit=crop", Rating: rating(4.8)},
	// Cinematic
	{ID: "cine1", Category: "Cinematic", Title: "Movie Scene", Subtitle: "Dramatic", ImageURL: "https://images.unsplash.com/photo-1536440136628-849c177e76a1?w=400&h=500&fit=crop", Rating: rating(4.9)},
	{ID: "cine2", Category: "Cinematic", Title: "Film Noir", Subtitle: "Classic Cinema", ImageURL: "https://images.unsplash.com/photo-1485846234645-a62644f84728?w=400&h=500&fit=crop", Rating: rating(4.8)},
	{ID: "cine3", Category: "Cinematic", Title: "Action Shot", Subtitle: "Dynamic", ImageURL: "https://images.unsplash.com/photo-1478720568477-152d9b164e26?w=400&h=500&fit=crop", Rating: rating(4.7)},
	{ID: "cine4", Category: "Cinematic", Title: "Epic Moment", Subtitle: "Blockbuster", ImageURL: "https://images.unsplash.com/photo-1574267432644-f610f4ac0b19?w=400&h=500&fit=crop", Rating: rating(4.9)},
	{ID: "cine5", Category: "Cinematic", Title: "Wide Angle", Subtitle: "Cinematic View", ImageURL: "https://images.unsplash.com/photo-1533929736458-ca588d08c8be?w=400&h=500&fit=crop", Rating: rating(4.6)},
	{ID: "cine6", Category: "Cinematic", Title: "Atmospheric", Subtitle: "Mood Lighting", ImageURL: "https://images.unsplash.com/photo-1509319117456-e0d96a4f28c9?w=400&h=500&fit=crop", Rating: rating(4.8)},
}

// Catalog is a read-only view over a set of cards.
type Catalog struct {
	categories []string
	cards      []Card
	byID       map[string]int
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(categories, cards)
}

// New builds a catalog from the given categories (in display order) and
// cards (in display order within each category).
func New(categoryNames []string, all []Card) *Catalog {
	c := &Catalog{
		categories: append([]string(nil), categoryNames...),
		cards:      append([]Card(nil), all...),
		byID:       make(map[string]int, len(all)),
	}
	for i, card := range c.cards {
		c.byID[card.ID] = i
	}
	return c
}

// Categories returns category names in display order.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// All returns every card in display order.
func (c *Catalog) All() []Card {
	return append([]Card(nil), c.cards...)
}

// Find returns the card with the given ID.
func (c *Catalog) Find(id string) (Card, error) {
	i, ok := c.byID[id]
	if !ok {
		return Card{}, fmt.Errorf("%w: '%s'", ErrNotFound, id)
	}
	return c.cards[i], nil
}

// ResolveCategory maps user input such as "cinematic" or " Trending " to
// the canonical category name.
func (c *Catalog) ResolveCategory(name string) (string, error) {
	want := slugify(name)
	for _, cat := range c.categories {
		if slugify(cat) == want {
			return cat, nil
		}
	}
	return "", fmt.Errorf("%w: '%s'", ErrUnknownCategory, name)
}

// ByCategory returns the cards of one category.
func (c *Catalog) ByCategory(name string) ([]Card, error) {
	cat, err := c.ResolveCategory(name)
	if err != nil {
		return nil, err
	}
	var out []Card
	for _, card := range c.cards {
		if card.Category == cat {
			out = append(out, card)
		}
	}
	return out, nil
}

// Search returns cards whose title or subtitle contains query,
// case-insensitively. An empty query matches everything.
func (c *Catalog) Search(query string) []Card {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.All()
	}
	var out []Card
	for _, card := range c.cards {
		if strings.Contains(strings.ToLower(card.Title), q) ||
			strings.Contains(strings.ToLower(card.Subtitle), q) {
			out = append(out, card)
		}
	}
	return out
}

// Filter returns the cards whose IDs are in ids, in catalog order.
// Unknown IDs are ignored.
func (c *Catalog) Filter(ids []string) []Card {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []Card
	for _, card := range c.cards {
		if want[card.ID] {
			out = append(out, card)
		}
	}
	return out
}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// slugify lowercases s and collapses everything that is not a letter or
// digit into single hyphens.
func slugify(s string) string {
	s = strings.ToLower(s)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
