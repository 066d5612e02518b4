package mqtt

import (
	"context"

	"github.com/QDU-Robomaster/DR16/pkg/dr16"
	"github.com/QDU-Robomaster/DR16/pkg/topic"
)

// FrameTopic is the MQTT topic carrying raw 18-byte frame blocks,
// relative to the queue's topic prefix.
const FrameTopic = "dr16/frame"

// Bridge republishes every validated frame from an in-process topic to
// the broker. Payloads are the exact wire encoding, retained so late
// subscribers see the last frame.
type Bridge struct {
	Queue *Queue
	Topic *topic.Topic[dr16.Data]
}

// NewBridge creates a Bridge.
func NewBridge(q *Queue, t *topic.Topic[dr16.Data]) *Bridge {
	return &Bridge{Queue: q, Topic: t}
}

// Name implements framework.Named.
func (b *Bridge) Name() string {
	return "mqtt-bridge"
}

// Run implements framework.Runnable.
func (b *Bridge) Run(ctx context.Context) error {
	sub := b.Topic.Subscribe()
	defer b.Topic.Unsubscribe(sub)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case data, ok := <-sub:
			if !ok {
				return nil
			}
			// the client hands the payload to its network goroutine and
			// keeps it for retained delivery, so every publish gets its
			// own encoding
			b.Queue.PubWith(FrameTopic, data.Marshal(), 0, true)
		}
	}
}
