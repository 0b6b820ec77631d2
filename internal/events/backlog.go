package events

import log "github.com/sirupsen/logrus"

// outbound is one serialized MQTT message held for replay once the
// broker connection comes back.
type outbound struct {
	topic    string
	payload  []byte
	qos      byte
	retained bool
}

// backlog is a bounded FIFO of messages published while the broker is
// unreachable. When full it discards the oldest entry, so the most
// recent gestures survive an extended outage. Callers must
// synchronize; RealPublisher guards it with its mutex.
type backlog struct {
	max     int
	queue   []outbound
	dropped int // discards since the last drain, gates the warning
}

func newBacklog(max int) *backlog {
	return &backlog{max: max}
}

func (b *backlog) push(m outbound) {
	if len(b.queue) == b.max {
		b.queue = b.queue[1:]
		if b.dropped == 0 {
			log.Warnf("events: backlog full (%d messages), discarding oldest", b.max)
		}
		b.dropped++
	}
	b.queue = append(b.queue, m)
}

// drain returns the queued messages in publish order and resets the
// backlog.
func (b *backlog) drain() []outbound {
	if len(b.queue) == 0 {
		return nil
	}
	out := b.queue
	b.queue = nil
	b.dropped = 0
	return out
}

func (b *backlog) len() int {
	return len(b.queue)
}
