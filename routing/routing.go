// Package routing defines the global routing table distributed across the
// real-time I/O tree.
//
// The table is keyed by destination identifier; each entry is the ordered
// sequence of hop identifiers on the path from the root node to that
// destination. The table is built by the node that owns the tree topology and
// consumed read-only by the repeater bring-up sequence, which pushes it to
// downstream satellites entry by entry.
package routing

import "errors"

const (
	// DestCount is the number of destination entries in a routing table.
	DestCount = 256
	// MaxHops is the maximum path length from the root to any destination.
	MaxHops = 32
	// InvalidHop marks unused positions in a hop sequence.
	InvalidHop uint8 = 0xff
)

// ErrTooManyHops indicates that a path exceeds MaxHops entries.
var ErrTooManyHops = errors.New("path exceeds maximum hop count")

// Table maps every destination identifier to its hop sequence.
//
// Unused hop positions hold InvalidHop. The zero value is not a valid table;
// use NewTable.
type Table [DestCount][MaxHops]uint8

// NewTable creates a table with every hop of every destination set to
// InvalidHop, meaning no destination is reachable yet.
func NewTable() *Table {
	var t Table
	for dest := range t {
		for hop := range t[dest] {
			t[dest][hop] = InvalidHop
		}
	}

	return &t
}

// SetPath sets the hop sequence for a destination, padding the remainder of
// the entry with InvalidHop.
//
// It returns ErrTooManyHops if hops is longer than MaxHops.
func (t *Table) SetPath(destination uint8, hops []uint8) error {
	if len(hops) > MaxHops {
		return ErrTooManyHops
	}

	entry := &t[destination]
	copy(entry[:], hops)
	for i := len(hops); i < MaxHops; i++ {
		entry[i] = InvalidHop
	}

	return nil
}

// Path returns the hop sequence for a destination, truncated at the first
// InvalidHop marker.
func (t *Table) Path(destination uint8) []uint8 {
	entry := t[destination]
	for i, hop := range entry {
		if hop == InvalidHop {
			return entry[:i]
		}
	}

	return entry[:]
}
