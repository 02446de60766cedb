package tracking

import (
	"github.com/dukex/mixpanel"
	"github.com/rs/zerolog"
)

// Tracker is a interface for tracking Events
type Tracker interface {

	// Track tracks an event, returns an error if failed.
	Track(event *Event) error
}

const (
	FeedViewed   = "feed_viewed"
	MomentPosted = "moment_posted"
	MomentLiked  = "moment_liked"
	MessageSent  = "message_sent"
)

// Event represents an event for tracking
type Event struct {
	UserID     string
	Name       string
	Properties map[string]interface{}
}

type MixpanelTracker struct {
	client mixpanel.Mixpanel
}

func NewMixpanelTracker(client mixpanel.Mixpanel) *MixpanelTracker {
	return &MixpanelTracker{client: client}
}

func (m *MixpanelTracker) Track(event *Event) error {
	return m.client.Track(event.UserID, event.Name, &mixpanel.Event{IP: "0", Properties: event.Properties})
}

// LogTracker writes events to the log, used when no mixpanel token is
// configured.
type LogTracker struct {
	log zerolog.Logger
}

func NewLogTracker(log zerolog.Logger) *LogTracker {
	return &LogTracker{log: log}
}

func (l *LogTracker) Track(event *Event) error {
	l.log.Info().Str("user", event.UserID).Str("event", event.Name).Fields(event.Properties).Msg("tracked")
	return nil
}

// Multi fans one event out to several trackers, returning the first error.
type Multi struct {
	trackers []Tracker
}

func NewMulti(trackers ...Tracker) *Multi {
	return &Multi{trackers: trackers}
}

func (m *Multi) Track(event *Event) error {
	var first error
	for _, tracker := range m.trackers {
		if err := tracker.Track(event); err != nil && first == nil {
			first = err
		}
	}
	return first
}
