package push_test

import (
	"encoding/json"
	"testing"

	"github.com/LemoonCan/milky-way-client/pkg/moments"
	"github.com/LemoonCan/milky-way-client/pkg/push"
	"github.com/LemoonCan/milky-way-client/pkg/users"
)

func TestEvent_Accessors(t *testing.T) {
	event := push.NewCommentDeleteEvent("m1", 7)

	id, err := event.GetString("momentId")
	if err != nil || id != "m1" {
		t.Fatalf("expected m1 actual %q err %v", id, err)
	}

	commentID, err := event.GetInt64("commentId")
	if err != nil || commentID != 7 {
		t.Fatalf("expected 7 actual %d err %v", commentID, err)
	}

	if _, err := event.GetString("missing"); err == nil {
		t.Fatal("expected error for missing field")
	}

	if _, err := event.GetInt64("momentId"); err == nil {
		t.Fatal("expected error for non-numeric field")
	}
}

func TestEvent_BindRoundTrip(t *testing.T) {
	original := push.NewCommentEvent("m1", moments.Comment{
		ID:      3,
		Author:  users.User{ID: "u1", Name: "小乐"},
		Content: "不错",
	})

	// simulate transport delivery
	data, err := json.Marshal(original)
	if err != nil {
		t.Fatal(err)
	}

	delivered := push.Event{}
	if err := json.Unmarshal(data, &delivered); err != nil {
		t.Fatal(err)
	}

	comment := moments.Comment{}
	if err := delivered.Bind("comment", &comment); err != nil {
		t.Fatal(err)
	}

	if comment.ID != 3 || comment.Author.ID != "u1" || comment.Content != "不错" {
		t.Fatalf("unexpected comment %+v", comment)
	}
}
