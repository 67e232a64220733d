package domain

import "testing"

func TestPageRequestNormalize(t *testing.T) {
	cases := []struct {
		name     string
		in       PageRequest
		wantPage int
		wantSize int
	}{
		{"zero value", PageRequest{}, 1, DefaultPageSize},
		{"negative", PageRequest{Page: -3, PageSize: -1}, 1, DefaultPageSize},
		{"in range", PageRequest{Page: 4, PageSize: 25}, 4, 25},
		{"capped", PageRequest{Page: 1, PageSize: 5000}, 1, MaxPageSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if got.Page != tc.wantPage || got.PageSize != tc.wantSize {
				t.Fatalf("Normalize() = %d/%d, want %d/%d", got.Page, got.PageSize, tc.wantPage, tc.wantSize)
			}
		})
	}
}

func TestPageRequestOffset(t *testing.T) {
	page := PageRequest{Page: 3, PageSize: 10}
	if got := page.Offset(); got != 20 {
		t.Fatalf("Offset() = %d, want 20", got)
	}
	first := PageRequest{}.Normalize()
	if got := first.Offset(); got != 0 {
		t.Fatalf("first page Offset() = %d, want 0", got)
	}
}
