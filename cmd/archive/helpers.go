package main

import (
	"archive/internal/catalog"
	"archive/internal/kv"
	"archive/internal/notify"
	"archive/internal/screen"
	"archive/internal/seed"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"
)

const notificationsKey = "notifications"

type FilterFlags struct {
	Query    string `short:"q" help:"Match title, artist, curator or tag"`
	Category string `short:"c" default:"all" help:"Restrict to one category"`
	Sort     string `short:"s" default:"best-match" help:"best-match, asc, desc, most-rated or least-rated"`
	Page     int    `short:"p" default:"1" help:"Page to show"`
}

func (f FilterFlags) state() (catalog.FilterState, error) {
	order, err := catalog.ParseSort(f.Sort)
	if err != nil {
		return catalog.FilterState{}, err
	}
	return catalog.FilterState{Query: f.Query, Category: f.Category, Sort: order}, nil
}

func loadNotifications(store kv.Store, logger *slog.Logger) []notify.Notification {
	raw, ok := store.Get(notificationsKey)
	if !ok {
		return seed.Notifications()
	}
	var items []notify.Notification
	if err := yaml.Unmarshal([]byte(raw), &items); err != nil {
		logger.Warn("discarding unreadable notifications", "error", err)
		return seed.Notifications()
	}
	if items == nil {
		logger.Warn("discarding notifications that are not a list")
		return seed.Notifications()
	}
	return items
}

func saveNotifications(store kv.Store, hub *notify.Hub) error {
	data, err := yaml.Marshal(hub.List())
	if err != nil {
		return fmt.Errorf("failed to encode notifications: %w", err)
	}
	if err := store.Set(notificationsKey, string(data)); err != nil {
		return fmt.Errorf("failed to save notifications: %w", err)
	}
	return nil
}

func findArtwork(store *catalog.Store, id string) (catalog.Item, error) {
	it, err := store.Get(id)
	if err != nil {
		return catalog.Item{}, fmt.Errorf("no artwork found with id %s: %w", id, err)
	}
	return it, nil
}

// withoutRenderer silences a screen used only for its mutations.
func withoutRenderer() screen.Option {
	return screen.WithRenderer(nil)
}
