package repeater

import "github.com/edgemount/go-rtlink/routing"

// noopRepeater is the inert Repeater used on nodes built without multi-hop
// routing capability. Every operation succeeds without touching the link.
type noopRepeater struct {
	index uint8
}

var _ Repeater = (*noopRepeater)(nil)

func (r *noopRepeater) Index() uint8 { return r.index }

func (r *noopRepeater) AuxChannel() uint8 { return r.index + 1 }

func (r *noopRepeater) State() LinkState { return DownState }

func (r *noopRepeater) Service(table *routing.Table, rank uint8) {}

func (r *noopRepeater) SyncTSC() error { return nil }

func (r *noopRepeater) SetPath(destination uint8, hops [routing.MaxHops]uint8) error { return nil }

func (r *noopRepeater) LoadRoutingTable(table *routing.Table) error { return nil }

func (r *noopRepeater) SetRank(rank uint8) error { return nil }
