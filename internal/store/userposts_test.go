package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"entrypoint/internal/posting"
)

// validRecord builds a minimal persisted record that passes validation.
func validRecord(id string) string {
	return fmt.Sprintf(`{
		"id": %q,
		"company": "Тест",
		"roleTitle": "Стажер",
		"salaryLabel": "договорная",
		"locationLabel": "Москва",
		"paid": "no",
		"format": "onsite",
		"city": "moscow",
		"direction": "backend",
		"postedAtISO": "2026-08-01T00:00:00.000Z",
		"shortPitch": "короткое описание",
		"about": "описание",
		"universities": ["hse"],
		"programs": ["ПИ"],
		"stack": ["Go"],
		"responsibilities": ["писать код"],
		"requirements": ["знать Go"],
		"niceToHave": [],
		"apply": {"telegramUrl": "https://t.me/test", "email": "hr@test.ru"}
	}`, id)
}

func arrayOf(records ...string) string {
	return "[" + strings.Join(records, ",") + "]"
}

func TestLoadUserPostsEmpty(t *testing.T) {
	s := Open(t.TempDir())
	defer s.Close()

	if posts := s.LoadUserPosts(); len(posts) != 0 {
		t.Errorf("expected no posts, got %d", len(posts))
	}
}

func TestSaveAndLoadUserPosts(t *testing.T) {
	s := Open(t.TempDir())
	defer s.Close()

	res := posting.ValidateRecord(json.RawMessage(validRecord("a")))
	if !res.Valid() {
		t.Fatalf("fixture invalid: %s", res.Reason)
	}
	s.SaveUserPosts([]*posting.Posting{res.Posting})

	posts := s.LoadUserPosts()
	if len(posts) != 1 || posts[0].ID != "a" {
		t.Fatalf("round trip failed: %+v", posts)
	}
	if !posts[0].UserCreated {
		t.Error("loaded post should carry the user-created flag")
	}
}

func TestLoadDropsInvalidRecords(t *testing.T) {
	s := Open(t.TempDir())
	defer s.Close()

	payload := arrayOf(validRecord("good"), `{"id": "bad"}`, `42`)
	if err := s.Set(KeyUserPosts, payload); err != nil {
		t.Fatal(err)
	}

	posts := s.LoadUserPosts()
	if len(posts) != 1 || posts[0].ID != "good" {
		t.Errorf("expected only the valid record, got %+v", posts)
	}
}

func TestLoadDiscardsNonArrayPayload(t *testing.T) {
	s := Open(t.TempDir())
	defer s.Close()

	if err := s.Set(KeyUserPosts, `{"not": "an array"}`); err != nil {
		t.Fatal(err)
	}
	if posts := s.LoadUserPosts(); len(posts) != 0 {
		t.Errorf("non-array payload should yield no posts, got %d", len(posts))
	}
}

func TestLegacyMigration(t *testing.T) {
	s := Open(t.TempDir())
	defer s.Close()

	payload := arrayOf(validRecord("legacy-a"), `{"broken": true}`)
	if err := s.Set(KeyLegacyUserPosts, payload); err != nil {
		t.Fatal(err)
	}

	posts := s.LoadUserPosts()
	if len(posts) != 1 || posts[0].ID != "legacy-a" {
		t.Fatalf("migration should keep valid legacy records, got %+v", posts)
	}

	// Legacy key is erased after migration.
	if _, ok := s.Get(KeyLegacyUserPosts); ok {
		t.Error("legacy key should be deleted after migration")
	}
	// Migrated posts live under the current key.
	if _, ok := s.Get(KeyUserPosts); !ok {
		t.Error("migrated posts should be stored under the current key")
	}

	// A second load reads the current key only.
	if posts := s.LoadUserPosts(); len(posts) != 1 {
		t.Errorf("second load should see the migrated posts, got %d", len(posts))
	}
}

func TestEmptyCurrentKeyStillMigrates(t *testing.T) {
	s := Open(t.TempDir())
	defer s.Close()

	if err := s.Set(KeyUserPosts, `[]`); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(KeyLegacyUserPosts, arrayOf(validRecord("old"))); err != nil {
		t.Fatal(err)
	}

	posts := s.LoadUserPosts()
	if len(posts) != 1 || posts[0].ID != "old" {
		t.Errorf("empty current payload should defer to legacy, got %+v", posts)
	}
	if _, ok := s.Get(KeyLegacyUserPosts); ok {
		t.Error("legacy key should be deleted after migration")
	}
}

func TestCurrentKeyWinsOverLegacy(t *testing.T) {
	s := Open(t.TempDir())
	defer s.Close()

	if err := s.Set(KeyUserPosts, arrayOf(validRecord("current"))); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(KeyLegacyUserPosts, arrayOf(validRecord("old"))); err != nil {
		t.Fatal(err)
	}

	posts := s.LoadUserPosts()
	if len(posts) != 1 || posts[0].ID != "current" {
		t.Errorf("current key should win, got %+v", posts)
	}
	// Legacy stays untouched when the current key exists.
	if _, ok := s.Get(KeyLegacyUserPosts); !ok {
		t.Error("legacy key should remain when no migration ran")
	}
}

func TestWelcomeMarker(t *testing.T) {
	s := Open(t.TempDir())
	defer s.Close()

	if s.WelcomeSeen() {
		t.Error("welcome should start unseen")
	}
	s.MarkWelcomeSeen()
	if !s.WelcomeSeen() {
		t.Error("welcome should be seen after marking")
	}
}
