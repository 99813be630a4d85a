package auxlink

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoopbackBothDirections(t *testing.T) {
	require := require.New(t)

	lb := NewLoopback()

	// empty channel: no packet, no error
	p, err := lb.Receive(1)
	require.NoError(err)
	require.Nil(p)
	require.Nil(lb.PeerReceive(1))

	// local -> peer
	require.NoError(lb.Send(1, EchoRequest{}))
	require.NoError(lb.Send(1, RoutingSetRank{Rank: 1}))
	p = lb.PeerReceive(1)
	require.Equal(EchoRequestType, p.Type())
	p = lb.PeerReceive(1)
	require.Equal(RoutingSetRankType, p.Type())
	require.Nil(lb.PeerReceive(1))

	// peer -> local
	lb.PeerSend(1, EchoReply{})
	p, err = lb.Receive(1)
	require.NoError(err)
	require.Equal(EchoReplyType, p.Type())
	p, err = lb.Receive(1)
	require.NoError(err)
	require.Nil(p)
}

func TestLoopbackChannelsAreIsolated(t *testing.T) {
	require := require.New(t)

	lb := NewLoopback()
	require.NoError(lb.Send(1, EchoRequest{}))
	require.NoError(lb.Send(2, TSCAck{}))

	require.Nil(lb.PeerReceive(3))
	p := lb.PeerReceive(2)
	require.Equal(TSCAckType, p.Type())
	p = lb.PeerReceive(1)
	require.Equal(EchoRequestType, p.Type())
}
