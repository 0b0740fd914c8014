// Package catalog owns the merged posting set: the immutable seed
// catalog plus the persisted user-submitted postings.
package catalog

import (
	"entrypoint/internal/posting"
	"entrypoint/internal/store"
)

// MaxUserPosts is the default cap on persisted user-created postings.
const MaxUserPosts = 50

// Catalog is the single source of truth for the merged posting list.
// Seed postings come first in publication order; user-created postings
// follow, newest first. It is not safe for concurrent mutation; the
// session controller is the single writer.
type Catalog struct {
	seed  []*posting.Posting
	user  []*posting.Posting
	st    *store.Store
	limit int
}

// Load builds the catalog from the seed set and whatever user postings
// the store holds. A limit of zero or less falls back to MaxUserPosts.
func Load(st *store.Store, limit int) *Catalog {
	if limit <= 0 {
		limit = MaxUserPosts
	}
	c := &Catalog{
		seed:  posting.Seed(),
		st:    st,
		limit: limit,
	}
	if st != nil {
		c.user = st.LoadUserPosts()
		if len(c.user) > c.limit {
			c.user = c.user[:c.limit]
		}
	}
	return c
}

// All returns the merged catalog: seed postings followed by user
// postings. The returned slice is a fresh copy; callers may not mutate
// catalog internals through it.
func (c *Catalog) All() []*posting.Posting {
	out := make([]*posting.Posting, 0, len(c.seed)+len(c.user))
	out = append(out, c.seed...)
	out = append(out, c.user...)
	return out
}

// ByID looks up a posting in the merged catalog.
func (c *Catalog) ByID(id string) (*posting.Posting, bool) {
	for _, p := range c.seed {
		if p.ID == id {
			return p, true
		}
	}
	for _, p := range c.user {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Has reports whether id exists in the merged catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.ByID(id)
	return ok
}

// UserPosts returns the user-created postings, newest first.
func (c *Catalog) UserPosts() []*posting.Posting {
	out := make([]*posting.Posting, len(c.user))
	copy(out, c.user)
	return out
}

// AddUserPost assigns the posting a unique identifier derived from its
// current ID, prepends it to the user set, enforces the cap, and
// persists the result. Persistence failures do not fail the add.
func (c *Catalog) AddUserPost(p *posting.Posting) {
	p.ID = posting.UniqueID(p.ID, c.Has)
	p.UserCreated = true

	c.user = append([]*posting.Posting{p}, c.user...)
	if len(c.user) > c.limit {
		c.user = c.user[:c.limit]
	}
	if c.st != nil {
		c.st.SaveUserPosts(c.user)
	}
}
