package screen

import (
	"archive/internal/catalog"
	"archive/internal/notify"
	"archive/internal/paging"
	"fmt"
)

const (
	Gallery        = "gallery"
	Bookmarks      = "bookmarks"
	ManageArtworks = "manage-artworks"
	ReviewArts     = "review-arts"
	Related        = "related"
)

// NewGallery shows approved artworks in a grid; the bookmark button flips.
func NewGallery(store *catalog.Store, opts ...Option) *Screen {
	s := New(Gallery, store, paging.GridSize, ModeFlip, opts...)
	s.base = catalog.Item.Approved
	return s
}

// NewBookmarks shows the saved records themselves; the bookmark button
// removes the record from the collection.
func NewBookmarks(store *catalog.Store, opts ...Option) *Screen {
	return New(Bookmarks, store, paging.GridSize, ModeRemove, opts...)
}

func NewManageArtworks(store *catalog.Store, opts ...Option) *Screen {
	return New(ManageArtworks, store, paging.TableSize, ModeRemove, opts...)
}

// NewRelated shows other approved works of item's category.
func NewRelated(store *catalog.Store, item catalog.Item, opts ...Option) *Screen {
	s := New(Related, store, paging.RelatedSize, ModeFlip, opts...)
	s.base = func(it catalog.Item) bool {
		return it.ID != item.ID && it.Category == item.Category && it.Approved()
	}
	return s
}

type Notifier interface {
	Push(n notify.Notification) notify.Notification
}

// Review is the curator queue of pending submissions.
type Review struct {
	*Screen
	notifier Notifier
}

func NewReviewArts(store *catalog.Store, notifier Notifier, opts ...Option) *Review {
	s := New(ReviewArts, store, paging.TableSize, ModeRemove, opts...)
	s.base = func(it catalog.Item) bool {
		return it.Status == catalog.StatusPending
	}
	return &Review{Screen: s, notifier: notifier}
}

func (r *Review) Approve(id string) error {
	return r.decide(id, catalog.StatusApproved, "Artwork approved", "%q is now public.")
}

func (r *Review) Reject(id string) error {
	return r.decide(id, catalog.StatusRejected, "Artwork rejected", "%q was not accepted.")
}

func (r *Review) decide(id string, status catalog.Status, title, format string) error {
	it, err := r.store.Get(id)
	if err != nil {
		return err
	}
	if it.Status != catalog.StatusPending {
		return fmt.Errorf("artwork %s is %s, not pending", id, it.Status)
	}
	if err := r.store.SetStatus(id, status); err != nil {
		return err
	}
	if r.notifier != nil {
		r.notifier.Push(notify.Notification{
			Title:   title,
			Message: fmt.Sprintf(format, it.Title),
			Kind:    notify.KindReview,
		})
	}
	r.Refresh()
	return nil
}
