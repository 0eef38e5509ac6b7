package intent

import (
	"fmt"
	"strings"
)

// SortBy selects the column the sync status table is sorted by.
type SortBy int

const (
	SortByNid SortBy = iota
	SortByAlias
	SortByStatus
)

// DefaultSortBy is the sort order used when --sort-by is omitted.
const DefaultSortBy = SortByStatus

func (s SortBy) String() string {
	switch s {
	case SortByNid:
		return "nid"
	case SortByAlias:
		return "alias"
	case SortByStatus:
		return "status"
	default:
		return fmt.Sprintf("SortBy(%d)", int(s))
	}
}

// ParseSortBy parses a --sort-by token into its SortBy value.
func ParseSortBy(s string) (SortBy, error) {
	switch strings.ToLower(s) {
	case "nid":
		return SortByNid, nil
	case "alias":
		return SortByAlias, nil
	case "status":
		return SortByStatus, nil
	default:
		return 0, fmt.Errorf("invalid --sort-by field %q: must be one of nid, alias, status", s)
	}
}

// Set implements pflag.Value, so --sort-by rejects out-of-enum tokens at
// parse time.
func (s *SortBy) Set(v string) error {
	parsed, err := ParseSortBy(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Type implements pflag.Value.
func (s *SortBy) Type() string { return "field" }
