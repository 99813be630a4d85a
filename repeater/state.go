package repeater

import "time"

// LinkState represents the various stages of a repeater link.
type LinkState uint32

// Repeater link states representing the stages of link bring-up.
const (
	// DownState indicates that no bring-up attempt is in progress.
	DownState LinkState = iota
	// SendPingState indicates that a liveness probe is about to be sent.
	SendPingState
	// WaitPingReplyState indicates that a probe was sent and a reply is awaited.
	WaitPingReplyState
	// UpState indicates that the link is established, synchronized, and configured.
	UpState
	// FailedState indicates that bring-up exhausted its retry budget; the link
	// is unusable until it is physically replugged.
	FailedState
)

// IsDown returns if the link state is down.
func (ls LinkState) IsDown() bool { return ls == DownState }

// IsUp returns if the link state is up.
func (ls LinkState) IsUp() bool { return ls == UpState }

// IsFailed returns if the link state is failed.
func (ls LinkState) IsFailed() bool { return ls == FailedState }

// String returns string representation of the link state.
func (ls LinkState) String() string {
	switch ls {
	case DownState:
		return "down"
	case SendPingState:
		return "send-ping"
	case WaitPingReplyState:
		return "wait-ping-reply"
	case UpState:
		return "up"
	case FailedState:
		return "failed"
	default:
		return "unknown"
	}
}

// linkState is the tagged per-link state. Each variant carries exactly the
// payload that is meaningful in that state, so a probe count without a pending
// probe or a deadline without a pending reply is unrepresentable.
type linkState interface {
	kind() LinkState
}

type down struct{}

// sendPing carries the number of probes transmitted so far.
type sendPing struct {
	pingCount uint16
}

// waitPingReply carries the transmitted probe count and the absolute
// monotonic deadline for the pending reply.
type waitPingReply struct {
	pingCount uint16
	deadline  time.Time
}

type up struct{}

type failed struct{}

func (down) kind() LinkState          { return DownState }
func (sendPing) kind() LinkState      { return SendPingState }
func (waitPingReply) kind() LinkState { return WaitPingReplyState }
func (up) kind() LinkState            { return UpState }
func (failed) kind() LinkState        { return FailedState }
