// Package intent defines the validated sync intent produced from a rad-sync
// invocation, and the resolver that folds a parsed flag bundle into it.
package intent

import (
	"strings"

	"github.com/spf13/pflag"
)

// Identifier types double as flag values so --rid and --seed parse
// directly into them.
var (
	_ pflag.Value = (*RepoID)(nil)
	_ pflag.Value = (*NodeIDs)(nil)
	_ pflag.Value = (*SortBy)(nil)
)

// RepoID names a repository. At this layer it is an opaque string compared
// by identity; structural validation of the identifier belongs to the node
// that executes the sync. The zero value means "the current repository".
type RepoID string

// String implements pflag.Value.
func (r *RepoID) String() string { return string(*r) }

// Set implements pflag.Value.
func (r *RepoID) Set(s string) error {
	*r = RepoID(s)
	return nil
}

// Type implements pflag.Value.
func (r *RepoID) Type() string { return "rid" }

// NodeID names a network peer. Opaque at this layer, same as RepoID.
type NodeID string

// NodeIDs collects repeated --seed values in the order they were given.
// Duplicates are preserved.
type NodeIDs []NodeID

// String implements pflag.Value.
func (n *NodeIDs) String() string {
	parts := make([]string, len(*n))
	for i, id := range *n {
		parts[i] = string(id)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Set implements pflag.Value. Each occurrence appends one seed.
func (n *NodeIDs) Set(s string) error {
	*n = append(*n, NodeID(s))
	return nil
}

// Type implements pflag.Value.
func (n *NodeIDs) Type() string { return "nid" }
