package auxlink

import (
	"fmt"

	"github.com/edgemount/go-rtlink/routing"
)

// PacketType identifies the control packet variant.
type PacketType uint8

// Control packet types carried on the aux channel.
const (
	// EchoRequestType is a liveness probe sent during link bring-up.
	EchoRequestType PacketType = iota
	// EchoReplyType answers an EchoRequest.
	EchoReplyType
	// TSCAckType acknowledges a timestamp-counter broadcast. It is the only
	// packet the satellite sends spontaneously, in response to the TSC latch
	// on the real-time link rather than to a request packet.
	TSCAckType
	// RoutingSetPathType carries one routing table entry for the satellite.
	RoutingSetPathType
	// RoutingSetRankType carries the hop rank for the satellite.
	RoutingSetRankType
	// RoutingAckType answers a RoutingSetPath or RoutingSetRank.
	RoutingAckType
)

// String returns the string representation of the packet type.
func (pt PacketType) String() string {
	switch pt {
	case EchoRequestType:
		return "echo-request"
	case EchoReplyType:
		return "echo-reply"
	case TSCAckType:
		return "tsc-ack"
	case RoutingSetPathType:
		return "routing-set-path"
	case RoutingSetRankType:
		return "routing-set-rank"
	case RoutingAckType:
		return "routing-ack"
	default:
		return "unknown"
	}
}

// Packet represents a control packet on the aux channel.
type Packet interface {
	fmt.Stringer

	// Type returns the packet type of the control packet.
	Type() PacketType
}

// EchoRequest is the liveness probe sent during link bring-up.
type EchoRequest struct{}

func (EchoRequest) Type() PacketType { return EchoRequestType }
func (EchoRequest) String() string   { return EchoRequestType.String() }

// EchoReply answers an EchoRequest.
type EchoReply struct{}

func (EchoReply) Type() PacketType { return EchoReplyType }
func (EchoReply) String() string   { return EchoReplyType.String() }

// TSCAck acknowledges a timestamp-counter broadcast.
type TSCAck struct{}

func (TSCAck) Type() PacketType { return TSCAckType }
func (TSCAck) String() string   { return TSCAckType.String() }

// RoutingSetPath sets the hop sequence for one destination on the satellite.
type RoutingSetPath struct {
	Destination uint8
	Hops        [routing.MaxHops]uint8
}

func (RoutingSetPath) Type() PacketType { return RoutingSetPathType }

func (p RoutingSetPath) String() string {
	return fmt.Sprintf("%s dest=%d", RoutingSetPathType, p.Destination)
}

// RoutingSetRank sets the hop rank on the satellite.
type RoutingSetRank struct {
	Rank uint8
}

func (RoutingSetRank) Type() PacketType { return RoutingSetRankType }

func (p RoutingSetRank) String() string {
	return fmt.Sprintf("%s rank=%d", RoutingSetRankType, p.Rank)
}

// RoutingAck answers a RoutingSetPath or RoutingSetRank.
type RoutingAck struct{}

func (RoutingAck) Type() PacketType { return RoutingAckType }
func (RoutingAck) String() string   { return RoutingAckType.String() }
