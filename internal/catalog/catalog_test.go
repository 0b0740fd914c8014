package catalog

import (
	"fmt"
	"testing"

	"entrypoint/internal/posting"
	"entrypoint/internal/store"
)

func newUserPost(id string) *posting.Posting {
	return &posting.Posting{
		ID:        id,
		Company:   "Тест",
		RoleTitle: "Стажер",
		City:      posting.CityMoscow,
		Format:    posting.FormatOnsite,
		Direction: posting.DirBackend,
	}
}

func TestAllMergesSeedThenUser(t *testing.T) {
	st := store.Open(t.TempDir())
	defer st.Close()
	c := Load(st, 0)

	seedLen := len(posting.Seed())
	if got := len(c.All()); got != seedLen {
		t.Fatalf("fresh catalog = %d postings, want %d", got, seedLen)
	}

	c.AddUserPost(newUserPost("mine"))
	all := c.All()
	if len(all) != seedLen+1 {
		t.Fatalf("catalog = %d postings, want %d", len(all), seedLen+1)
	}
	// Seed order is preserved and user postings come after.
	if all[0].ID != posting.Seed()[0].ID {
		t.Errorf("first posting = %s, want first seed entry", all[0].ID)
	}
	if all[seedLen].ID != "mine" {
		t.Errorf("posting after seed = %s, want mine", all[seedLen].ID)
	}
}

func TestNewestUserPostFirst(t *testing.T) {
	st := store.Open(t.TempDir())
	defer st.Close()
	c := Load(st, 0)

	c.AddUserPost(newUserPost("first"))
	c.AddUserPost(newUserPost("second"))

	user := c.UserPosts()
	if len(user) != 2 || user[0].ID != "second" || user[1].ID != "first" {
		t.Errorf("user posts = %v, want newest first", ids(user))
	}
}

func TestByID(t *testing.T) {
	c := Load(nil, 0)

	seed := posting.Seed()
	if p, ok := c.ByID(seed[0].ID); !ok || p.ID != seed[0].ID {
		t.Errorf("ByID(%s) failed", seed[0].ID)
	}
	if _, ok := c.ByID("nope"); ok {
		t.Error("ByID should miss unknown ids")
	}
}

func TestAddUserPostSuffixesCollidingID(t *testing.T) {
	st := store.Open(t.TempDir())
	defer st.Close()
	c := Load(st, 0)

	taken := posting.Seed()[0].ID
	p := newUserPost(taken)
	c.AddUserPost(p)
	if p.ID != taken+"-2" {
		t.Errorf("colliding id = %s, want %s-2", p.ID, taken)
	}

	p2 := newUserPost(taken)
	c.AddUserPost(p2)
	if p2.ID != taken+"-3" {
		t.Errorf("second collision = %s, want %s-3", p2.ID, taken)
	}
}

func TestUserPostCap(t *testing.T) {
	st := store.Open(t.TempDir())
	defer st.Close()
	c := Load(st, 3)

	for i := 0; i < 5; i++ {
		c.AddUserPost(newUserPost(fmt.Sprintf("p%d", i)))
	}

	user := c.UserPosts()
	if len(user) != 3 {
		t.Fatalf("user posts = %d, want cap 3", len(user))
	}
	// Newest survive, oldest are dropped.
	if user[0].ID != "p4" || user[2].ID != "p2" {
		t.Errorf("capped posts = %v", ids(user))
	}
}

func TestUserPostsSurviveReload(t *testing.T) {
	dir := t.TempDir()

	st := store.Open(dir)
	c := Load(st, 0)
	p := newUserPost("persisted")
	p.SalaryLabel = "договорная"
	p.Paid = posting.PaidNo
	p.LocationLabel = "Москва"
	p.PostedAt = "2026-08-01"
	p.ShortPitch = "короткое описание"
	p.About = "описание"
	p.Universities = []string{"hse"}
	p.Programs = []string{"ПИ"}
	p.Stack = []string{"Go"}
	p.Responsibilities = []string{"писать код"}
	p.Requirements = []string{"знать Go"}
	p.NiceToHave = []string{}
	p.Apply = posting.ApplyContact{TelegramURL: "https://t.me/x", Email: "hr@x.ru"}
	c.AddUserPost(p)
	st.Close()

	st2 := store.Open(dir)
	defer st2.Close()
	c2 := Load(st2, 0)
	got, ok := c2.ByID("persisted")
	if !ok {
		t.Fatal("user post did not survive reload")
	}
	if !got.UserCreated {
		t.Error("reloaded post should carry the user-created flag")
	}
}

func ids(posts []*posting.Posting) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}
