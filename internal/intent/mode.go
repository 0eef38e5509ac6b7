package intent

import (
	"fmt"
	"time"
)

// Built-in settings defaults. Operator config may override them per
// invocation; explicit flags always win.
const (
	DefaultReplicas = 3
	DefaultTimeout  = 9 * time.Second
)

// SyncDirection indicates which way a repository sync flows.
type SyncDirection int

const (
	DirectionFetch SyncDirection = iota
	DirectionAnnounce
	DirectionBoth
)

func (d SyncDirection) String() string {
	switch d {
	case DirectionFetch:
		return "fetch"
	case DirectionAnnounce:
		return "announce"
	case DirectionBoth:
		return "fetch+announce"
	default:
		return fmt.Sprintf("SyncDirection(%d)", int(d))
	}
}

// SyncSettings configures a repository sync. Construct once, never mutate.
type SyncSettings struct {
	// Replicas is the number of seeds to sync with. Zero is legal and
	// means no new replicas are sought.
	Replicas int
	// Seeds are the nodes named with --seed, in the order given.
	Seeds []NodeID
	// Timeout bounds how long the engine waits for syncing to complete.
	// Always whole seconds.
	Timeout time.Duration
}

// DefaultSettings returns the built-in sync settings: 3 replicas, no
// explicit seeds, 9 second timeout.
func DefaultSettings() SyncSettings {
	return SyncSettings{
		Replicas: DefaultReplicas,
		Timeout:  DefaultTimeout,
	}
}

// SyncMode is the resolved operational mode of an invocation. Exactly one
// variant is produced per invocation: Inventory or Repo.
type SyncMode interface {
	syncMode()
}

// Inventory announces the node's entire inventory to the network. No
// repository, direction, or settings apply to this mode.
type Inventory struct{}

// Repo synchronizes a single repository in the given direction.
type Repo struct {
	Settings  SyncSettings
	Direction SyncDirection
}

func (Inventory) syncMode() {}
func (Repo) syncMode()      {}

// StatusRequest describes a `rad-sync status` invocation.
type StatusRequest struct {
	SortBy SortBy
	// RID is the repository whose status is displayed; the zero value
	// means the current repository.
	RID RepoID
}
