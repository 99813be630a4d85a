package repeater

import (
	"time"

	"github.com/benbjohnson/clock"

	"github.com/edgemount/go-rtlink/auxlink"
	"github.com/edgemount/go-rtlink/logger"
	"github.com/edgemount/go-rtlink/routing"
)

const (
	// pingReplyTimeout is the per-probe reply budget during link bring-up.
	pingReplyTimeout = 100 * time.Millisecond

	// maxPingCount caps the transmitted probes; together with the per-probe
	// timeout it bounds total discovery time to roughly 20s before a link
	// that never replies is declared failed.
	maxPingCount = 200

	// tscAckTimeout is the budget for the satellite's spontaneous TSCAck.
	// The ack depends on the peer latching a hardware event rather than on a
	// request packet, so the slack absorbs peer scheduling jitter.
	tscAckTimeout = 10000 * time.Millisecond

	// routingAckTimeout is the budget for each routing and rank acknowledgment.
	routingAckTimeout = 200 * time.Millisecond
)

// Repeater manages one downstream link hop of the real-time I/O tree.
//
// The owning driver calls Service once per polling tick. SyncTSC, SetPath,
// LoadRoutingTable, and SetRank may additionally be called at any time; they
// are no-op successes unless the link is up.
type Repeater interface {
	// Index returns the physical link index.
	Index() uint8

	// AuxChannel returns the aux channel number reachable through the link.
	AuxChannel() uint8

	// State returns the current link state.
	State() LinkState

	// Service advances the link state machine by one polling tick. On a
	// successful ping handshake it runs the bring-up sequence: TSC sync,
	// routing table load, rank set. Outside bring-up it never blocks.
	Service(table *routing.Table, rank uint8)

	// SyncTSC triggers a timestamp broadcast on the link and awaits the
	// satellite's acknowledgment. No-op success unless the link is up.
	SyncTSC() error

	// SetPath pushes the hop sequence for one destination to the satellite.
	// No-op success unless the link is up.
	SetPath(destination uint8, hops [routing.MaxHops]uint8) error

	// LoadRoutingTable pushes every table entry to the satellite, aborting at
	// the first entry that is not acknowledged. No-op success unless the link
	// is up.
	LoadRoutingTable(table *routing.Table) error

	// SetRank pushes the hop rank to the satellite. No-op success unless the
	// link is up.
	SetRank(rank uint8) error
}

// New creates a repeater for the link described by cfg.
//
// When routing is disabled in the configuration it returns the inert
// implementation, which needs no collaborators. Otherwise the link status
// source, aux transport, and TSC trigger are required.
func New(cfg *Config) (Repeater, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	if !cfg.routingEnabled {
		return &noopRepeater{index: cfg.index}, nil
	}

	if cfg.link == nil {
		return nil, ErrNoLinkStatus
	}
	if cfg.transport == nil {
		return nil, ErrNoTransport
	}
	if cfg.trigger == nil {
		return nil, ErrNoTSCTrigger
	}

	return &linkRepeater{
		index:     cfg.index,
		channel:   cfg.index + 1,
		link:      cfg.link,
		transport: cfg.transport,
		trigger:   cfg.trigger,
		clock:     cfg.clock,
		logger:    cfg.logger.With("link", cfg.index),
		state:     down{},
	}, nil
}

// linkRepeater is the functional Repeater implementation.
type linkRepeater struct {
	index   uint8
	channel uint8

	link      LinkStatus
	transport auxlink.Transport
	trigger   TSCTrigger
	clock     clock.Clock
	logger    logger.Logger

	state linkState
}

var _ Repeater = (*linkRepeater)(nil)

func (r *linkRepeater) Index() uint8 { return r.index }

func (r *linkRepeater) AuxChannel() uint8 { return r.channel }

func (r *linkRepeater) State() LinkState { return r.state.kind() }

func (r *linkRepeater) Service(table *routing.Table, rank uint8) {
	switch st := r.state.(type) {
	case down:
		if r.link.RxUp(r.index) {
			r.logger.Info("link RX became up, pinging")
			r.state = sendPing{pingCount: 0}
		}

	case sendPing:
		if !r.link.RxUp(r.index) {
			r.logger.Error("link RX went down during ping")
			r.state = down{}
			return
		}

		if err := r.transport.Send(r.channel, auxlink.EchoRequest{}); err != nil {
			r.logger.Error("failed to send echo request", "error", err)
			r.state = failed{}
			return
		}
		r.state = waitPingReply{
			pingCount: st.pingCount + 1,
			deadline:  r.clock.Now().Add(pingReplyTimeout),
		}

	case waitPingReply:
		if !r.link.RxUp(r.index) {
			r.logger.Error("link RX went down during ping")
			r.state = down{}
			return
		}

		// Transport faults and packets other than the echo reply are
		// dropped here; the probe simply times out and is retried.
		pkt, err := r.transport.Receive(r.channel)
		if err == nil && pkt != nil && pkt.Type() == auxlink.EchoReplyType {
			r.logger.Info("remote replied", "probes", st.pingCount)
			r.state = up{}
			r.bringUp(table, rank)
			return
		}

		if r.clock.Now().After(st.deadline) {
			if st.pingCount > maxPingCount {
				r.logger.Error("ping failed", "probes", st.pingCount)
				r.state = failed{}
			} else {
				// Retry with the already-transmitted count; the send step
				// above is the only place the count increases.
				r.state = sendPing{pingCount: st.pingCount}
			}
		}

	case up:
		if !r.link.RxUp(r.index) {
			r.logger.Info("link is down")
			r.state = down{}
		}

	case failed:
		if !r.link.RxUp(r.index) {
			r.logger.Info("link is down")
			r.state = down{}
		}
	}
}

// bringUp runs the post-handshake configuration sequence. The steps are
// sequential and short-circuiting: the first failure marks the link failed
// rather than leaving it half-configured and up.
func (r *linkRepeater) bringUp(table *routing.Table, rank uint8) {
	if err := r.SyncTSC(); err != nil {
		r.logger.Error("failed to sync TSC", "error", err)
		r.state = failed{}
		return
	}
	if err := r.LoadRoutingTable(table); err != nil {
		r.logger.Error("failed to load routing table", "error", err)
		r.state = failed{}
		return
	}
	if err := r.SetRank(rank); err != nil {
		r.logger.Error("failed to set rank", "error", err)
		r.state = failed{}
		return
	}
}

// awaitReply polls the aux channel until a packet arrives, the link drops,
// the budget elapses, or the transport faults. The deadline is computed once
// at entry; link liveness is re-checked on every iteration, so a link-down
// event aborts the wait immediately.
//
// Any received packet is returned as success; the caller validates its type.
func (r *linkRepeater) awaitReply(budget time.Duration) (auxlink.Packet, error) {
	deadline := r.clock.Now().Add(budget)
	for {
		if !r.link.RxUp(r.index) {
			return nil, ErrLinkDown
		}
		if r.clock.Now().After(deadline) {
			return nil, ErrTimeout
		}

		pkt, err := r.transport.Receive(r.channel)
		if err != nil {
			return nil, err
		}
		if pkt != nil {
			return pkt, nil
		}
	}
}

func (r *linkRepeater) SyncTSC() error {
	if !r.State().IsUp() {
		return nil
	}

	r.trigger.Arm(r.index)
	for r.trigger.Busy(r.index) {
	}

	// TSCAck is the only aux packet the satellite sends spontaneously, in
	// response to the timestamp latch on the real-time link.
	reply, err := r.awaitReply(tscAckTimeout)
	if err != nil {
		return err
	}
	if reply.Type() != auxlink.TSCAckType {
		return ErrUnexpectedReply
	}

	return nil
}

func (r *linkRepeater) SetPath(destination uint8, hops [routing.MaxHops]uint8) error {
	if !r.State().IsUp() {
		return nil
	}

	err := r.transport.Send(r.channel, auxlink.RoutingSetPath{
		Destination: destination,
		Hops:        hops,
	})
	if err != nil {
		return err
	}

	reply, err := r.awaitReply(routingAckTimeout)
	if err != nil {
		return err
	}
	if reply.Type() != auxlink.RoutingAckType {
		return ErrUnexpectedReply
	}

	return nil
}

func (r *linkRepeater) LoadRoutingTable(table *routing.Table) error {
	for i := 0; i < routing.DestCount; i++ {
		if err := r.SetPath(uint8(i), table[i]); err != nil {
			return err
		}
	}

	return nil
}

func (r *linkRepeater) SetRank(rank uint8) error {
	if !r.State().IsUp() {
		return nil
	}

	err := r.transport.Send(r.channel, auxlink.RoutingSetRank{Rank: rank})
	if err != nil {
		return err
	}

	reply, err := r.awaitReply(routingAckTimeout)
	if err != nil {
		return err
	}
	if reply.Type() != auxlink.RoutingAckType {
		return ErrUnexpectedReply
	}

	return nil
}
