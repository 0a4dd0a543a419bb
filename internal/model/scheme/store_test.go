package scheme

import "testing"

func TestFindByCategory(t *testing.T) {
	store := NewMemoryStore(Seed())

	cases := map[string]int{
		CategoryMaternal:   2,
		"CHILD":            2,
		CategoryAdolescent: 1,
		"unknown":          0,
	}
	for category, want := range cases {
		if got := store.FindByCategory(category); len(got) != want {
			t.Fatalf("category %q: expected %d schemes, got %d", category, want, len(got))
		}
	}
}

func TestFindByIDRoundTrip(t *testing.T) {
	store := NewMemoryStore(Seed())
	for _, item := range store.List() {
		got, ok := store.FindByID(item.ID)
		if !ok || got.Name != item.Name {
			t.Fatalf("expected to find scheme %s", item.Name)
		}
	}
}
