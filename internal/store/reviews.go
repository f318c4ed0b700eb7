package store

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
)

// ErrEmptyReview is returned when a submitted review is empty or
// whitespace-only.
var ErrEmptyReview = errors.New("review text is empty")

const siteReviewsKey = "site_global_reviews"

func roomReviewsKey(roomID string) string {
	return "reviews_" + roomID
}

// ReviewStore keeps two append-only text logs in a KVStore: one per
// room and one site-wide. Values are JSON-encoded arrays of strings.
// Appends are read-modify-write of the whole list, serialized by an
// internal mutex so concurrent submissions cannot drop each other.
type ReviewStore struct {
	kv KVStore
	mu sync.Mutex
}

func NewReviewStore(kv KVStore) *ReviewStore {
	return &ReviewStore{kv: kv}
}

// LoadRoom returns the stored reviews for a room in insertion order. A
// never-written key yields an empty list. A value that fails to decode
// propagates the decode error to the caller.
func (s *ReviewStore) LoadRoom(ctx context.Context, roomID string) ([]string, error) {
	return s.load(ctx, roomReviewsKey(roomID))
}

// AppendRoom appends one review to a room's log. Whitespace-only text
// is rejected with ErrEmptyReview and leaves the log untouched.
func (s *ReviewStore) AppendRoom(ctx context.Context, roomID, text string) error {
	return s.append(ctx, roomReviewsKey(roomID), text)
}

// LoadSite returns the site-wide reviews in insertion order. Display
// order (most recent first) is the caller's concern.
func (s *ReviewStore) LoadSite(ctx context.Context) ([]string, error) {
	return s.load(ctx, siteReviewsKey)
}

// AppendSite appends one review to the site-wide log.
func (s *ReviewStore) AppendSite(ctx context.Context, text string) error {
	return s.append(ctx, siteReviewsKey, text)
}

func (s *ReviewStore) load(ctx context.Context, key string) ([]string, error) {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []string{}, nil
		}
		return nil, err
	}
	var reviews []string
	if err := json.Unmarshal([]byte(raw), &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *ReviewStore) append(ctx context.Context, key, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyReview
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	reviews, err := s.load(ctx, key)
	if err != nil {
		return err
	}
	reviews = append(reviews, text)
	encoded, err := json.Marshal(reviews)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, key, string(encoded))
}
