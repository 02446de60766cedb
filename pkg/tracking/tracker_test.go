package tracking_test

import (
	"reflect"
	"testing"

	"github.com/dukex/mixpanel"

	"github.com/LemoonCan/milky-way-client/pkg/tracking"
)

func TestMixpanelTracker_Track(t *testing.T) {
	client := mixpanel.NewMock()
	tracker := tracking.NewMixpanelTracker(client)

	id := "u123"
	properties := map[string]interface{}{"scope": "friends"}
	event := &tracking.Event{UserID: id, Name: tracking.FeedViewed, Properties: properties}

	err := tracker.Track(event)
	if err != nil {
		t.Fatal(err)
	}

	people := client.People[id]

	if len(people.Events) != 1 {
		t.Fatal("event not logged")
	}

	if !reflect.DeepEqual(people.Events[0].Properties, properties) {
		t.Fatal("did not store properties.")
	}
}
