package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle  = errors.New("item title cannot be empty")
	ErrRatingRange = errors.New("item rating out of range")
)

const MaxRating = 5.0

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Item struct {
	ID           string    `yaml:"id" json:"id"`
	Title        string    `yaml:"title" json:"title"`
	Artist       string    `yaml:"artist,omitempty" json:"artist,omitempty"`
	Curator      string    `yaml:"curator,omitempty" json:"curator,omitempty"`
	Category     string    `yaml:"category" json:"category"`
	Period       string    `yaml:"period,omitempty" json:"period,omitempty"`
	Year         int       `yaml:"year,omitempty" json:"year,omitempty"`
	Rating       float64   `yaml:"rating" json:"rating"`
	TotalRatings int       `yaml:"total_ratings" json:"totalRatings"`
	Tags         []string  `yaml:"tags,omitempty" json:"tags,omitempty"`
	Status       Status    `yaml:"status,omitempty" json:"status,omitempty"`
	AddedAt      time.Time `yaml:"added_at,omitempty" json:"addedAt,omitzero"`
}

func NewItem(title, artist, category string) Item {
	return Item{
		ID:       uuid.New().String(),
		Title:    title,
		Artist:   artist,
		Category: category,
		Status:   StatusPending,
		AddedAt:  time.Now(),
	}
}

func (it Item) WithTags(tags ...string) Item {
	newIt := it
	newIt.Tags = slices.Clone(tags)
	return newIt
}

func (it Item) WithCurator(curator string) Item {
	newIt := it
	newIt.Curator = curator
	return newIt
}

func (it Item) WithPeriod(period string) Item {
	newIt := it
	newIt.Period = period
	return newIt
}

func (it Item) WithStatus(status Status) Item {
	newIt := it
	newIt.Status = status
	newIt.Tags = slices.Clone(it.Tags)
	return newIt
}

func (it Item) HasTag(tag string) bool {
	return slices.ContainsFunc(it.Tags, func(t string) bool {
		return strings.EqualFold(t, tag)
	})
}

// Approved reports whether the item is publicly visible. Seed records
// without a status predate moderation and count as approved.
func (it Item) Approved() bool {
	return it.Status == StatusApproved || it.Status == ""
}

func (it Item) clone() Item {
	it.Tags = slices.Clone(it.Tags)
	return it
}

func (it Item) Validate() error {
	if strings.TrimSpace(it.Title) == "" {
		return ErrEmptyTitle
	}
	if it.Rating < 0 || it.Rating > MaxRating {
		return fmt.Errorf("%w: rating %.2f", ErrRatingRange, it.Rating)
	}
	if it.TotalRatings < 0 {
		return fmt.Errorf("%w: %d ratings", ErrRatingRange, it.TotalRatings)
	}
	return nil
}
