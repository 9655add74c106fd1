package core

import "testing"

func pickerLabels(p *Picker) []string {
	items := p.Items()
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Label)
	}
	return out
}

func TestPickerEmptyQueryKeepsOrder(t *testing.T) {
	p := NewPicker("articles", []PickerItem{
		{ID: "1", Label: "Go proverbs"},
		{ID: "2", Label: "Errors are values"},
	})
	got := pickerLabels(p)
	if len(got) != 2 || got[0] != "Go proverbs" || got[1] != "Errors are values" {
		t.Fatalf("unexpected order for empty query: %v", got)
	}
}

func TestPickerSubsequenceMatch(t *testing.T) {
	p := NewPicker("articles", []PickerItem{
		{ID: "1", Label: "Go proverbs"},
		{ID: "2", Label: "Errors are values"},
		{ID: "3", Label: "Generics in Go"},
	})
	p.SetQuery("gopr")
	got := pickerLabels(p)
	if len(got) == 0 || got[0] != "Go proverbs" {
		t.Fatalf("expected prefix-heavy match first, got %v", got)
	}
}

func TestPickerTypoFallback(t *testing.T) {
	p := NewPicker("articles", []PickerItem{
		{ID: "1", Label: "Concurrency patterns"},
		{ID: "2", Label: "Errors are values"},
	})
	// "pattenrs" is not a subsequence of anything; edit distance saves it
	p.SetQuery("pattenrs")
	got := pickerLabels(p)
	if len(got) != 1 || got[0] != "Concurrency patterns" {
		t.Fatalf("expected typo fallback to match, got %v", got)
	}
}

func TestPickerTypoFallbackIgnoresShortQueries(t *testing.T) {
	p := NewPicker("articles", []PickerItem{{ID: "1", Label: "xyz"}})
	p.SetQuery("qq")
	if got := pickerLabels(p); len(got) != 0 {
		t.Fatalf("two-rune garbage query should not match, got %v", got)
	}
}

func TestPickerCursorClampsOnRefilter(t *testing.T) {
	p := NewPicker("articles", []PickerItem{
		{ID: "1", Label: "alpha"},
		{ID: "2", Label: "beta"},
		{ID: "3", Label: "gamma"},
	})
	p.CursorDown()
	p.CursorDown()
	if p.Cursor() != 2 {
		t.Fatalf("cursor = %d, want 2", p.Cursor())
	}
	p.SetQuery("alpha")
	if p.Cursor() != 0 {
		t.Fatalf("cursor should clamp to shrunken list, got %d", p.Cursor())
	}
	if it, ok := p.Selected(); !ok || it.ID != "1" {
		t.Fatalf("selected = %+v, %v; want item 1", it, ok)
	}
}

func TestPickerSearchFieldOverridesLabel(t *testing.T) {
	p := NewPicker("articles", []PickerItem{
		{ID: "1", Label: "Opaque title", Search: "golang memory model"},
	})
	p.SetQuery("memory")
	if got := pickerLabels(p); len(got) != 1 {
		t.Fatalf("expected Search text to drive matching, got %v", got)
	}
}
