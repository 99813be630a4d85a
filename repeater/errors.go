package repeater

import "errors"

var (
	// ErrConfigNil indicates that a nil Config was provided.
	ErrConfigNil = errors.New("repeater config is nil")

	// ErrNoLinkStatus indicates that no link status source was configured.
	ErrNoLinkStatus = errors.New("no link status source configured")

	// ErrNoTransport indicates that no aux transport was configured.
	ErrNoTransport = errors.New("no aux transport configured")

	// ErrNoTSCTrigger indicates that no TSC trigger was configured.
	ErrNoTSCTrigger = errors.New("no TSC trigger configured")
)

var (
	// ErrLinkDown indicates that the physical receive signal was lost while an
	// operation was in progress.
	ErrLinkDown = errors.New("link went down")

	// ErrTimeout indicates that no reply arrived within the operation's budget.
	ErrTimeout = errors.New("reply timeout")

	// ErrUnexpectedReply indicates that a reply of the wrong type was received
	// where a specific acknowledgment was required.
	ErrUnexpectedReply = errors.New("unexpected reply")
)
