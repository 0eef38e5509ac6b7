package intent

import (
	"strings"
	"testing"
)

func TestParseSortBy(t *testing.T) {
	tests := []struct {
		in   string
		want SortBy
	}{
		{"nid", SortByNid},
		{"alias", SortByAlias},
		{"status", SortByStatus},
		{"NID", SortByNid},
		{"Status", SortByStatus},
	}

	for _, tc := range tests {
		got, err := ParseSortBy(tc.in)
		if err != nil {
			t.Errorf("ParseSortBy(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseSortBy(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseSortBy_Invalid(t *testing.T) {
	_, err := ParseSortBy("bogus")
	if err == nil {
		t.Fatal("ParseSortBy(\"bogus\") should return an error")
	}
	if !strings.Contains(err.Error(), "--sort-by") {
		t.Errorf("error should name the flag, got: %v", err)
	}
	if !strings.Contains(err.Error(), "nid, alias, status") {
		t.Errorf("error should list the valid fields, got: %v", err)
	}
}

func TestSortBy_Default(t *testing.T) {
	if DefaultSortBy != SortByStatus {
		t.Errorf("DefaultSortBy = %v, want %v", DefaultSortBy, SortByStatus)
	}
}

func TestSortBy_PflagValue(t *testing.T) {
	s := DefaultSortBy
	if s.String() != "status" {
		t.Errorf("default String() = %q, want \"status\"", s.String())
	}

	if err := s.Set("alias"); err != nil {
		t.Fatalf("Set(\"alias\") error: %v", err)
	}
	if s != SortByAlias {
		t.Errorf("after Set(\"alias\"), s = %v", s)
	}

	if err := s.Set("bogus"); err == nil {
		t.Error("Set(\"bogus\") should return an error")
	}
	if s != SortByAlias {
		t.Errorf("failed Set must not change the value, got %v", s)
	}
}
