package models

import (
	"encoding/json"
	"testing"
)

func TestStatusMarshalNullary(t *testing.T) {
	data, err := json.Marshal(Parked())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"Parked"` {
		t.Fatalf("got %s, want \"Parked\"", data)
	}
}

func TestStatusMarshalInTransit(t *testing.T) {
	s := InTransit(3, 1, Coordinate{X: 10, Y: 20}, 5)
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back AirplaneStatus
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Tag != StatusInTransit {
		t.Fatalf("tag %s, want InTransit", back.Tag)
	}
	if *back.Transit != *s.Transit {
		t.Fatalf("transit payload %+v, want %+v", back.Transit, s.Transit)
	}
}

func TestStatusRoundTripAllTags(t *testing.T) {
	statuses := []AirplaneStatus{
		Parked(), Loading(), Unloading(), Refueling(), Maintenance(),
		{Tag: StatusBroken},
	}
	for _, s := range statuses {
		data, err := json.Marshal(s)
		if err != nil {
			t.Fatalf("%s: marshal: %v", s.Tag, err)
		}
		var back AirplaneStatus
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("%s: unmarshal: %v", s.Tag, err)
		}
		if back.Tag != s.Tag {
			t.Fatalf("round trip changed %s to %s", s.Tag, back.Tag)
		}
	}
}

func TestStatusUnmarshalRejectsUnknown(t *testing.T) {
	var s AirplaneStatus
	if err := json.Unmarshal([]byte(`"Flying"`), &s); err == nil {
		t.Fatalf("unknown tag should fail")
	}
}
