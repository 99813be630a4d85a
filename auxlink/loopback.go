package auxlink

import (
	"sync"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/edgemount/go-rtlink/internal/queue"
)

const loopbackPrealloc = 16

// Loopback is an in-memory Transport connecting a local node to a simulated
// peer, one packet FIFO per direction per channel.
//
// The local side uses the Transport methods; the peer side uses PeerSend and
// PeerReceive. Channels are created lazily on first use. All methods are safe
// for concurrent use, so a simulated satellite may run in its own goroutine.
type Loopback struct {
	channels *xsync.MapOf[uint8, *loopbackChannel]
}

type loopbackChannel struct {
	mu     sync.Mutex
	toPeer queue.Queue[Packet] // local → peer
	toHere queue.Queue[Packet] // peer → local
}

// NewLoopback creates an empty loopback transport.
func NewLoopback() *Loopback {
	return &Loopback{
		channels: xsync.NewMapOf[uint8, *loopbackChannel](),
	}
}

// Send transmits a packet from the local side to the peer side of a channel.
//
// This method implements the Transport.Send() interface. It never fails.
func (lb *Loopback) Send(channel uint8, p Packet) error {
	ch := lb.channel(channel)
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.toPeer.Enqueue(p)

	return nil
}

// Receive returns the next packet the peer sent on a channel, or (nil, nil)
// when none is pending.
//
// This method implements the Transport.Receive() interface.
func (lb *Loopback) Receive(channel uint8) (Packet, error) {
	ch := lb.channel(channel)
	ch.mu.Lock()
	defer ch.mu.Unlock()

	p, ok := ch.toHere.Dequeue()
	if !ok {
		return nil, nil
	}

	return p, nil
}

// PeerSend transmits a packet from the peer side to the local side of a channel.
func (lb *Loopback) PeerSend(channel uint8, p Packet) {
	ch := lb.channel(channel)
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.toHere.Enqueue(p)
}

// PeerReceive returns the next packet the local side sent on a channel, or
// nil when none is pending.
func (lb *Loopback) PeerReceive(channel uint8) Packet {
	ch := lb.channel(channel)
	ch.mu.Lock()
	defer ch.mu.Unlock()

	p, ok := ch.toPeer.Dequeue()
	if !ok {
		return nil
	}

	return p
}

func (lb *Loopback) channel(channel uint8) *loopbackChannel {
	ch, _ := lb.channels.LoadOrCompute(channel, func() *loopbackChannel {
		return &loopbackChannel{
			toPeer: queue.NewSliceQueue[Packet](loopbackPrealloc),
			toHere: queue.NewSliceQueue[Packet](loopbackPrealloc),
		}
	})

	return ch
}

// ensure Loopback implements the Transport interface.
var _ Transport = (*Loopback)(nil)
