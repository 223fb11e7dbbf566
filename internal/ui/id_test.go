package ui

import "testing"

func TestPrefixLength(t *testing.T) {
	tests := []struct {
		name   string
		length map[string]int
		id     string
		want   int
	}{
		{
			name:   "case insensitive lookup",
			length: map[string]int{"abc123": 4},
			id:     "ABC123",
			want:   4,
		},
		{
			name:   "missing id",
			length: map[string]int{"abc123": 4},
			id:     "",
			want:   0,
		},
		{
			name:   "nil map",
			length: nil,
			id:     "ABC123",
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrefixLength(tt.length, tt.id); got != tt.want {
				t.Fatalf("PrefixLength() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPrefixLengthsDistinguishesSharedPrefixes(t *testing.T) {
	lengths := PrefixLengths([]string{"abc123", "abd456", "xyz789"})

	if got := PrefixLength(lengths, "abc123"); got != 3 {
		t.Errorf("PrefixLength(abc123) = %d, want 3", got)
	}
	if got := PrefixLength(lengths, "xyz789"); got != 1 {
		t.Errorf("PrefixLength(xyz789) = %d, want 1", got)
	}
}

func TestHighlightIDWithoutTerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if got := HighlightID("abc123", 3); got != "abc123" {
		t.Fatalf("expected plain id without a terminal, got %q", got)
	}
}

func TestHighlightIDBoundsCheck(t *testing.T) {
	if got := HighlightID("abc", 10); got != "abc" {
		t.Fatalf("expected id unchanged for out-of-range prefix, got %q", got)
	}
	if got := HighlightID("", 1); got != "" {
		t.Fatalf("expected empty id unchanged, got %q", got)
	}
}
