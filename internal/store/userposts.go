package store

import (
	"encoding/json"
	"log"

	"entrypoint/internal/posting"
)

// Storage keys. The legacy key is read at most once: its contents are
// migrated to the current key and the legacy entry is erased.
const (
	KeyUserPosts       = "entrypoint.user_posts.v1"
	KeyLegacyUserPosts = "coolboard.user_posts.v1"
	KeyWelcomeSeen     = "entrypoint.welcome.seen"
)

// LoadUserPosts returns the persisted user-created postings. Records that
// fail validation are dropped individually; a payload that is not a JSON
// array is discarded wholesale. When the current key yields no valid
// records, the legacy key is migrated: its valid records are copied
// under the current key and the legacy entry is deleted.
func (s *Store) LoadUserPosts() []*posting.Posting {
	if raw, ok := s.Get(KeyUserPosts); ok {
		if posts := decodeUserPosts(raw); len(posts) > 0 {
			return posts
		}
	}

	raw, ok := s.Get(KeyLegacyUserPosts)
	if !ok {
		return nil
	}
	posts := decodeUserPosts(raw)
	if len(posts) == 0 {
		return nil
	}

	s.SaveUserPosts(posts)
	if err := s.Delete(KeyLegacyUserPosts); err != nil {
		log.Printf("store: failed to clear legacy posts: %v", err)
	}
	return posts
}

// decodeUserPosts parses a persisted payload, keeping only records that
// pass validation.
func decodeUserPosts(raw string) []*posting.Posting {
	var records []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil
	}

	var posts []*posting.Posting
	for _, rec := range records {
		res := posting.ValidateRecord(rec)
		if !res.Valid() {
			log.Printf("store: dropping invalid record: %s", res.Reason)
			continue
		}
		posts = append(posts, res.Posting)
	}
	return posts
}

// SaveUserPosts persists the user-created postings under the current key.
// Persistence failures are logged and otherwise ignored: the in-memory
// catalog remains authoritative for the session.
func (s *Store) SaveUserPosts(posts []*posting.Posting) {
	if posts == nil {
		posts = []*posting.Posting{}
	}
	data, err := json.Marshal(posts)
	if err != nil {
		log.Printf("store: failed to encode posts: %v", err)
		return
	}
	if err := s.Set(KeyUserPosts, string(data)); err != nil {
		log.Printf("store: failed to save posts: %v", err)
	}
}

// WelcomeSeen reports whether the first-visit notice has been dismissed.
func (s *Store) WelcomeSeen() bool {
	v, ok := s.Get(KeyWelcomeSeen)
	return ok && v == "1"
}

// MarkWelcomeSeen records that the first-visit notice was dismissed.
// Failures are ignored; the notice will simply show again next run.
func (s *Store) MarkWelcomeSeen() {
	if err := s.Set(KeyWelcomeSeen, "1"); err != nil {
		log.Printf("store: failed to mark welcome seen: %v", err)
	}
}
