package notifications

import (
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/ksuid"

	"github.com/LemoonCan/milky-way-client/pkg/push"
)

// Aggregator buffers received push events most-recent-first and tracks
// which have been read. The buffer is in-memory only and is discarded
// wholesale by Clear when the notification panel closes.
type Aggregator struct {
	mu sync.Mutex

	list []*Notification

	now func() time.Time
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		now: time.Now,
	}
}

// Record stores the event with freshly computed display fields and returns
// the new record. Ids are client-generated at receipt, duplicate deliveries
// duplicate the record.
func (a *Aggregator) Record(event push.Event) *Notification {
	a.mu.Lock()
	defer a.mu.Unlock()

	receivedAt := a.now()
	title, message, avatar := display(event)

	n := &Notification{
		ID:         fmt.Sprintf("%s-%d-%s", event.Type, receivedAt.UnixNano(), ksuid.New().String()),
		Type:       event.Type,
		Title:      title,
		Message:    message,
		Avatar:     avatar,
		ReceivedAt: receivedAt,
	}

	a.list = append([]*Notification{n}, a.list...)
	return n
}

// Notifications returns the buffered records, most recent first.
func (a *Aggregator) Notifications() []*Notification {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]*Notification(nil), a.list...)
}

// MarkRead flips the read flag of one record.
func (a *Aggregator) MarkRead(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, n := range a.list {
		if n.ID == id {
			n.Read = true
			return
		}
	}
}

// MarkAllRead flips the read flag of every record.
func (a *Aggregator) MarkAllRead() {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, n := range a.list {
		n.Read = true
	}
}

// Clear empties the buffer. Unread events are discarded, not persisted.
func (a *Aggregator) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.list = nil
}

// Stats summarizes all buffered records.
func (a *Aggregator) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return stats(a.list)
}

// FeedRelevant returns the subset of records about feed entries, in order.
func (a *Aggregator) FeedRelevant() []*Notification {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.feedRelevantLocked()
}

// FeedRelevantStats mirrors Stats restricted to the feed-relevant subset.
func (a *Aggregator) FeedRelevantStats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return stats(a.feedRelevantLocked())
}

func (a *Aggregator) feedRelevantLocked() []*Notification {
	subset := make([]*Notification, 0)
	for _, n := range a.list {
		if n.Type == push.EventTypeLike || n.Type == push.EventTypeComment {
			subset = append(subset, n)
		}
	}
	return subset
}

func stats(list []*Notification) Stats {
	s := Stats{Total: len(list)}
	for _, n := range list {
		if n.Read {
			continue
		}

		s.Unread++
		switch n.Type {
		case push.EventTypeLike:
			s.LikeCount++
		case push.EventTypeComment:
			s.CommentCount++
		}
	}
	return s
}
