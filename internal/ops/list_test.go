package ops

import (
	"testing"

	"entrypoint/internal/catalog"
	"entrypoint/internal/posting"
)

func TestListUnfilteredReturnsWholeCatalog(t *testing.T) {
	cat := catalog.Load(nil, 0)

	out, err := List(cat, ListInput{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if out.Pagination.Total != len(posting.Seed()) {
		t.Errorf("Total = %d, want %d", out.Pagination.Total, len(posting.Seed()))
	}
	if len(out.Items) != len(posting.Seed()) {
		t.Errorf("items = %d, want %d", len(out.Items), len(posting.Seed()))
	}
	// Catalog order is preserved.
	if out.Items[0].ID != posting.Seed()[0].ID {
		t.Errorf("first item = %s, want %s", out.Items[0].ID, posting.Seed()[0].ID)
	}
}

func TestListFiltersByDirection(t *testing.T) {
	cat := catalog.Load(nil, 0)

	out, err := List(cat, ListInput{Directions: []string{posting.DirQA}})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for _, item := range out.Items {
		if item.Direction != posting.DirQA {
			t.Errorf("item %s has direction %s", item.ID, item.Direction)
		}
	}
	if len(out.Items) == 0 {
		t.Error("seed catalog should contain QA postings")
	}
}

func TestListSalaryFloorExcludesUnlisted(t *testing.T) {
	cat := catalog.Load(nil, 0)
	floor := 1

	out, err := List(cat, ListInput{SalaryMin: &floor})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for _, item := range out.Items {
		p, _ := cat.ByID(item.ID)
		if p.SalaryMin == nil {
			t.Errorf("item %s has no salary but passed the floor", item.ID)
		}
	}
}

func TestListPagination(t *testing.T) {
	cat := catalog.Load(nil, 0)
	total := len(posting.Seed())

	out, err := List(cat, ListInput{Limit: 3})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out.Items) != 3 {
		t.Fatalf("page = %d items, want 3", len(out.Items))
	}
	if !out.Pagination.HasMore {
		t.Error("HasMore should be true on the first page")
	}

	out2, err := List(cat, ListInput{Limit: 100, Offset: 3})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out2.Items) != total-3 {
		t.Errorf("second page = %d items, want %d", len(out2.Items), total-3)
	}
	if out2.Pagination.HasMore {
		t.Error("HasMore should be false on the last page")
	}

	// Offset past the end yields an empty page, not an error.
	out3, err := List(cat, ListInput{Offset: 10_000})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out3.Items) != 0 {
		t.Errorf("overshoot page = %d items, want 0", len(out3.Items))
	}
}

func TestListSummaryFields(t *testing.T) {
	cat := catalog.Load(nil, 0)

	out, err := List(cat, ListInput{Query: "kotlin"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out.Items) != 1 {
		t.Fatalf("query kotlin matched %d items", len(out.Items))
	}
	item := out.Items[0]
	if item.LogoText == "" || item.SalaryLabel == "" || item.PostedLabel == "" {
		t.Errorf("summary is missing derived labels: %+v", item)
	}
}
