package cmd

import (
	"strings"
	"testing"

	"rad-sync/internal/intent"
)

func TestStatus_DefaultSortBy(t *testing.T) {
	eng, _, _ := execute(t, "status")

	if eng.req == nil {
		t.Fatal("engine received no status request")
	}
	if eng.req.SortBy != intent.SortByStatus {
		t.Errorf("sort-by = %v, want %v", eng.req.SortBy, intent.SortByStatus)
	}
	if eng.req.RID != "" {
		t.Errorf("rid = %q, want empty", eng.req.RID)
	}
}

func TestStatus_SortByFields(t *testing.T) {
	tests := []struct {
		token string
		want  intent.SortBy
	}{
		{"nid", intent.SortByNid},
		{"alias", intent.SortByAlias},
		{"status", intent.SortByStatus},
	}

	for _, tc := range tests {
		t.Run(tc.token, func(t *testing.T) {
			eng, _, _ := execute(t, "status", "--sort-by", tc.token)
			if eng.req == nil {
				t.Fatal("engine received no status request")
			}
			if eng.req.SortBy != tc.want {
				t.Errorf("sort-by = %v, want %v", eng.req.SortBy, tc.want)
			}
		})
	}
}

func TestStatus_InvalidSortByRejected(t *testing.T) {
	err := executeErr(t, "status", "--sort-by", "bogus")
	if !strings.Contains(err.Error(), "sort-by") {
		t.Errorf("error should name the flag, got: %v", err)
	}
	if !strings.Contains(err.Error(), "nid, alias, status") {
		t.Errorf("error should list valid fields, got: %v", err)
	}
}

func TestStatus_GlobalsApply(t *testing.T) {
	eng, _, _ := execute(t, "status", "--rid", "rad:z42hL2jL4XNk6K8oHQaSWfMgCL7ji", "-v")

	if eng.req == nil {
		t.Fatal("engine received no status request")
	}
	if eng.req.RID != "rad:z42hL2jL4XNk6K8oHQaSWfMgCL7ji" {
		t.Errorf("rid = %q", eng.req.RID)
	}
}

func TestStatus_DirectionFlagsNotRecognized(t *testing.T) {
	// --fetch/--announce/--inventory belong to the root invocation only.
	err := executeErr(t, "status", "--fetch")
	if !strings.Contains(err.Error(), "unknown flag") {
		t.Errorf("error = %v, want unknown flag", err)
	}
}
