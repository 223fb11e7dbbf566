package tracker

import (
	"errors"
	"testing"
)

func TestIDIndexResolve(t *testing.T) {
	index := NewIDIndex([]string{"abc12345", "abd67890", "xyz00000"})

	tests := []struct {
		name    string
		prefix  string
		want    string
		wantErr error
	}{
		{"full id", "abc12345", "abc12345", nil},
		{"unique prefix", "x", "xyz00000", nil},
		{"longer unique prefix", "abd6", "abd67890", nil},
		{"case insensitive", "XYZ", "xyz00000", nil},
		{"ambiguous", "ab", "", ErrAmbiguousIDPrefix},
		{"missing", "qqq", "", ErrNotFound},
		{"empty", "", "", ErrNotFound},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := index.Resolve(test.prefix)
			if test.wantErr != nil {
				if !errors.Is(err, test.wantErr) {
					t.Fatalf("expected %v, got %v", test.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolve %q: %v", test.prefix, err)
			}
			if got != test.want {
				t.Fatalf("resolve %q: got %q, want %q", test.prefix, got, test.want)
			}
		})
	}
}

func TestIDIndexExactMatchWinsOverSharedPrefix(t *testing.T) {
	index := NewIDIndex([]string{"abc", "abc12345"})

	got, err := index.Resolve("abc")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "abc" {
		t.Fatalf("expected exact match to win, got %q", got)
	}
}

func TestIDIndexPrefixLengths(t *testing.T) {
	index := NewIDIndex([]string{"abc12345", "abd67890", "xyz00000"})

	lengths := index.PrefixLengths()
	if lengths["abc12345"] != 3 {
		t.Errorf("abc12345: expected prefix length 3, got %d", lengths["abc12345"])
	}
	if lengths["abd67890"] != 3 {
		t.Errorf("abd67890: expected prefix length 3, got %d", lengths["abd67890"])
	}
	if lengths["xyz00000"] != 1 {
		t.Errorf("xyz00000: expected prefix length 1, got %d", lengths["xyz00000"])
	}
}
