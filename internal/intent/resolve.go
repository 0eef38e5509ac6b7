package intent

import "time"

// Flags is the typed, defaulted flag bundle the argument surface hands to
// Resolve. Every field is already structurally valid: conflicting flags
// were rejected during parsing and numeric fields are non-negative.
// Fields whose flags were omitted carry their defaults; NewFlags returns
// a bundle with all defaults applied.
type Flags struct {
	Fetch     bool
	Announce  bool
	Inventory bool
	Replicas  int
	Seeds     []NodeID
	Timeout   time.Duration
}

// NewFlags returns a flag bundle with every field at its default: no
// direction flags, no inventory, 3 replicas, no seeds, 9 second timeout.
func NewFlags() Flags {
	return Flags{
		Replicas: DefaultReplicas,
		Timeout:  DefaultTimeout,
	}
}

// Resolve folds a validated flag bundle into exactly one SyncMode.
//
// It is total: every bundle that passed the argument surface maps to a
// mode, and it cannot fail. Inventory wins unconditionally — any
// direction, rid, or settings fields present alongside it are ignored,
// not rejected. That shape is normally impossible (the argument surface
// rejects it), but a caller constructing Flags directly gets the same
// answer.
func Resolve(f Flags) SyncMode {
	if f.Inventory {
		return Inventory{}
	}
	return Repo{
		Settings:  settingsOf(f),
		Direction: DirectionOf(f.Fetch, f.Announce),
	}
}

// DirectionOf maps the (fetch, announce) flag pair to a direction. An
// unqualified sync is bidirectional, as is asking for both explicitly.
func DirectionOf(fetch, announce bool) SyncDirection {
	switch {
	case fetch && announce:
		return DirectionBoth
	case fetch:
		return DirectionFetch
	case announce:
		return DirectionAnnounce
	default:
		return DirectionBoth
	}
}

// settingsOf builds immutable SyncSettings from the bundle. The seed
// slice is copied so later mutation of the bundle cannot reach into a
// constructed mode.
func settingsOf(f Flags) SyncSettings {
	s := SyncSettings{
		Replicas: f.Replicas,
		Timeout:  f.Timeout,
	}
	if len(f.Seeds) > 0 {
		s.Seeds = make([]NodeID, len(f.Seeds))
		copy(s.Seeds, f.Seeds)
	}
	return s
}
