package repeater

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"

	"github.com/edgemount/go-rtlink/auxlink"
	"github.com/edgemount/go-rtlink/logger"
	"github.com/edgemount/go-rtlink/routing"
)

// fakeLink is a settable link status source.
type fakeLink struct {
	rxUp bool
}

func (l *fakeLink) RxUp(index uint8) bool { return l.rxUp }

// fakeTrigger records Arm calls and completes instantly.
type fakeTrigger struct {
	armed int
	onArm func()
}

func (t *fakeTrigger) Arm(index uint8)       { t.armed++; t.callOnArm() }
func (t *fakeTrigger) Busy(index uint8) bool { return false }

func (t *fakeTrigger) callOnArm() {
	if t.onArm != nil {
		t.onArm()
	}
}

// scriptTransport is a single-threaded transport fake. Sent packets are
// recorded; received packets are served from the rx queue. Each Receive call
// advances the mock clock by step, so the busy-wait reply engine makes
// progress toward its deadline even when no packet ever arrives.
type scriptTransport struct {
	clk  *clock.Mock
	step time.Duration

	sent    []auxlink.Packet
	rx      []auxlink.Packet
	onSend  func(p auxlink.Packet)
	sendErr error
	recvErr error
}

func (tr *scriptTransport) Send(channel uint8, p auxlink.Packet) error {
	if tr.sendErr != nil {
		return tr.sendErr
	}

	tr.sent = append(tr.sent, p)
	if tr.onSend != nil {
		tr.onSend(p)
	}

	return nil
}

func (tr *scriptTransport) Receive(channel uint8) (auxlink.Packet, error) {
	if tr.step > 0 {
		tr.clk.Add(tr.step)
	}
	if tr.recvErr != nil {
		return nil, tr.recvErr
	}
	if len(tr.rx) == 0 {
		return nil, nil
	}

	p := tr.rx[0]
	tr.rx = tr.rx[1:]

	return p, nil
}

func (tr *scriptTransport) push(p auxlink.Packet) {
	tr.rx = append(tr.rx, p)
}

func (tr *scriptTransport) sentOfType(pt auxlink.PacketType) []auxlink.Packet {
	var out []auxlink.Packet
	for _, p := range tr.sent {
		if p.Type() == pt {
			out = append(out, p)
		}
	}

	return out
}

// fixture wires a repeater to fakes of all its collaborators.
type fixture struct {
	rep  Repeater
	link *fakeLink
	trig *fakeTrigger
	tr   *scriptTransport
	clk  *clock.Mock
}

func newFixture(t *testing.T, index uint8) *fixture {
	t.Helper()

	clk := clock.NewMock()
	link := &fakeLink{}
	trig := &fakeTrigger{}
	tr := &scriptTransport{clk: clk}

	cfg, err := NewConfig(index,
		WithLinkStatus(link),
		WithTransport(tr),
		WithTSCTrigger(trig),
		WithClock(clk),
		WithLogger(logger.NewSlog(logger.ErrorLevel, false)),
	)
	require.NoError(t, err)

	rep, err := New(cfg)
	require.NoError(t, err)

	return &fixture{rep: rep, link: link, trig: trig, tr: tr, clk: clk}
}

// ackAll makes the fake peer acknowledge every routing and rank request and
// every timestamp broadcast.
func (f *fixture) ackAll() {
	f.trig.onArm = func() {
		f.tr.push(auxlink.TSCAck{})
	}
	f.tr.onSend = func(p auxlink.Packet) {
		switch p.Type() {
		case auxlink.RoutingSetPathType, auxlink.RoutingSetRankType:
			f.tr.push(auxlink.RoutingAck{})
		}
	}
}

// bringUp drives the repeater from DownState to UpState with a cooperative
// peer and then detaches the ack script.
func (f *fixture) bringUp(t *testing.T, table *routing.Table, rank uint8) {
	t.Helper()

	f.link.rxUp = true
	f.ackAll()

	f.rep.Service(table, rank) // Down -> SendPing
	f.rep.Service(table, rank) // SendPing -> WaitPingReply
	require.Equal(t, WaitPingReplyState, f.rep.State())

	f.tr.push(auxlink.EchoReply{})
	f.rep.Service(table, rank) // WaitPingReply -> Up, full bring-up sequence
	require.Equal(t, UpState, f.rep.State())

	f.trig.onArm = nil
	f.tr.onSend = nil
	f.tr.sent = nil
	f.trig.armed = 0
}
