package repeater

// LinkStatus reports the physical-layer receive signal of repeater links.
//
// Implementations query the link hardware and must be side-effect-free; the
// state machine and every bounded wait re-check the signal on each poll
// iteration.
type LinkStatus interface {
	// RxUp returns whether the receive signal is present on the link with the
	// given index.
	RxUp(index uint8) bool
}

// TSCTrigger drives the per-link timestamp-broadcast hardware handshake.
//
// Arming the trigger makes the local node push its current timestamp counter
// value down the physical link out-of-band; the downstream satellite latches
// it and acknowledges with a spontaneous TSCAck packet on the aux channel.
// The handshake is write-then-spin: the caller arms the trigger and polls Busy
// until it clears. Completion is assumed bounded and fast, so no timeout is
// modeled at this layer.
type TSCTrigger interface {
	// Arm writes the start signal for the timestamp broadcast on the link
	// with the given index.
	Arm(index uint8)

	// Busy reports whether the broadcast for the link with the given index is
	// still in progress.
	Busy(index uint8) bool
}
