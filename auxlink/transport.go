package auxlink

import "errors"

// ErrTransport indicates an aux channel fault: an undecodable frame, a CRC
// failure, or any other error reported by the framing layer. Transport
// implementations should wrap it so callers can match with errors.Is.
var ErrTransport = errors.New("aux transport error")

// Transport moves control packets over aux channels.
//
// Channel numbers address the logical packet channel layered on a physical
// link; the repeater for link n talks on channel n+1.
type Transport interface {
	// Send transmits a packet on the given channel. It is fire-and-forget:
	// a nil return means the packet was handed to the framing layer, not
	// that it was delivered.
	Send(channel uint8, p Packet) error

	// Receive returns the next pending packet on the given channel without
	// blocking. It returns (nil, nil) when no packet is currently available,
	// and a non-nil error on a transport fault.
	Receive(channel uint8) (Packet, error)
}
