package dr16

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/QDU-Robomaster/DR16/pkg/uart"
)

// State is the acquisition loop state, exported for monitoring.
type State int32

// Acquisition loop states.
const (
	StateAwaitingFrame State = iota
	StateFrameReady
	StateRecovering
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateAwaitingFrame:
		return "awaiting-frame"
	case StateFrameReady:
		return "frame-ready"
	case StateRecovering:
		return "recovering"
	}
	return "unknown"
}

// Publisher delivers one validated frame to consumers.
type Publisher interface {
	Publish(Data)
}

// PublishFunc is the func form of Publisher.
type PublishFunc func(Data)

// Publish implements Publisher.
func (f PublishFunc) Publish(d Data) {
	f(d)
}

// DefaultRecoverDelay is the pause after discarding a corrupted frame,
// long enough for the line to pass the next frame boundary.
const DefaultRecoverDelay = 3 * time.Millisecond

// Receiver drives the acquisition loop: it repeatedly reads one frame
// block from the port, decodes and validates it, and publishes every
// valid frame. A corrupted frame triggers local recovery; no error is
// surfaced and nothing is logged on that path.
//
// The receiver owns exactly one frame instance, overwritten in place
// each cycle. The port and publisher are injected at construction.
type Receiver struct {
	RecoverDelay time.Duration

	port uart.Port
	pub  Publisher

	state     atomic.Int32
	published atomic.Uint64
	corrupted atomic.Uint64

	buf  [FrameSize]byte
	data Data
}

// NewReceiver creates a Receiver reading from port and publishing to pub.
func NewReceiver(port uart.Port, pub Publisher) *Receiver {
	return &Receiver{
		RecoverDelay: DefaultRecoverDelay,
		port:         port,
		pub:          pub,
	}
}

// Name implements framework.Named.
func (r *Receiver) Name() string {
	return "dr16"
}

// State returns the current loop state.
func (r *Receiver) State() State {
	return State(r.state.Load())
}

// Stats returns the number of frames published and discarded so far.
func (r *Receiver) Stats() (published, corrupted uint64) {
	return r.published.Load(), r.corrupted.Load()
}

// OnMonitor implements framework.Application. Health checking is left
// to consumers of the broadcast.
func (r *Receiver) OnMonitor() {}

// Run implements framework.Runnable. It loops until the context is
// cancelled or the port fails; the frame read itself blocks without
// timeout, so cancellation is observed between cycles only.
func (r *Receiver) Run(ctx context.Context) error {
	if err := r.port.ResetRx(); err != nil {
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.state.Store(int32(StateAwaitingFrame))
		if err := r.port.ReadFrame(r.buf[:]); err != nil {
			return err
		}
		r.data.Unmarshal(r.buf[:])
		if r.data.Corrupted() {
			r.state.Store(int32(StateRecovering))
			r.corrupted.Add(1)
			if err := r.port.ResetRx(); err != nil {
				return err
			}
			r.pause(ctx)
			continue
		}
		r.state.Store(int32(StateFrameReady))
		r.published.Add(1)
		r.pub.Publish(r.data)
	}
}

func (r *Receiver) pause(ctx context.Context) {
	delay := r.RecoverDelay
	if delay <= 0 {
		return
	}
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
