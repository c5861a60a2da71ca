package briefing

import "testing"

func TestProductLineCatalogSize(t *testing.T) {
	if len(ProductLines) != 20 {
		t.Errorf("expected 20 product lines, got %d", len(ProductLines))
	}
}

func TestSuggestEmptyInputReturnsAll(t *testing.T) {
	got := Suggest("")
	if len(got) != len(ProductLines)+1 {
		t.Fatalf("expected %d suggestions, got %d", len(ProductLines)+1, len(got))
	}
	if got[0] != ClearFilter {
		t.Errorf("expected clear entry first, got %q", got[0])
	}
}

func TestSuggestCaseInsensitiveSubstring(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"push", []string{ClearFilter, "Push"}},
		{"PUSH", []string{ClearFilter, "Push"}},
		{"mail", []string{ClearFilter, "Email"}},
		{"app", []string{ClearFilter, "In-App", "WhatsApp"}},
		{"zzz", []string{ClearFilter}},
	}
	for _, tt := range tests {
		got := Suggest(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("Suggest(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Suggest(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestSuggestClearEntryAlwaysPresent(t *testing.T) {
	for _, input := range []string{"", "push", "no such line", "   "} {
		got := Suggest(input)
		if len(got) == 0 || got[0] != ClearFilter {
			t.Errorf("Suggest(%q): clear entry missing: %v", input, got)
		}
	}
}
