// Package auxlink defines the control packets carried on the auxiliary
// channel of a real-time I/O link, and the transport boundary used to send
// and receive them.
//
// Each physical link carries, next to the real-time data path, a logical
// packet channel ("aux channel") used for link establishment and control
// traffic: liveness probes, timestamp-counter synchronization acknowledgments,
// and routing configuration. Packets form a closed set; all of them follow a
// strict request/reply pairing except TSCAck, which the downstream satellite
// emits spontaneously after latching a timestamp broadcast on the real-time
// link.
//
// The Transport interface is the boundary to the actual framing layer. Sends
// are fire-and-forget and receives are non-blocking, so callers implement
// their own bounded waits on top. The Loopback type provides an in-memory
// transport for tests and simulations.
package auxlink
