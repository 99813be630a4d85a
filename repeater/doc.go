// Package repeater implements link establishment and control for one hop of a
// tree-structured real-time distributed I/O network.
//
// A repeater forwards timing, routing, and control traffic between an upstream
// master or satellite node and a downstream satellite over a point-to-point
// physical link. This package owns the per-link bring-up protocol: physical
// link detection, a ping-based liveness handshake, timestamp counter (TSC)
// synchronization, and propagation of the global routing table and hop rank to
// the downstream node.
//
// The owning driver calls Service once per polling tick per repeater. There is
// no internal goroutine: all repeaters are serviced cooperatively from one
// logical thread, and the bounded waits inside the bring-up sequence stall the
// polling loop by design, because routing and rank must land on the satellite
// before the link is declared up.
//
// Link life cycle:
//
//	Down ──link up──▶ SendPing ──probe sent──▶ WaitPingReply ──reply──▶ Up
//	                      ▲                        │
//	                      └──────timeout, ≤ cap────┘──timeout, > cap──▶ Failed
//
// A Failed link is only re-attempted after a physical link-down/up cycle,
// which forces a full re-handshake instead of resuming bring-up against a peer
// that may have rebooted mid-sequence.
//
// SyncTSC, LoadRoutingTable, SetPath, and SetRank are also callable directly
// at any time, e.g. for a fleet-wide clock resync or routing update; they are
// no-op successes unless the link is currently up.
package repeater
