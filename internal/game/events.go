package game

import (
	"container/heap"
	"encoding/json"
	"sort"

	"cargoways/internal/models"
)

// EventKind names a scheduled occurrence.
type EventKind string

const (
	EventRestock             EventKind = "Restock"
	EventFuelPriceUpdate     EventKind = "FuelPriceUpdate"
	EventLoading             EventKind = "LoadingEvent"
	EventRefuelComplete      EventKind = "RefuelComplete"
	EventMaintenanceComplete EventKind = "MaintenanceComplete"
	EventFlightProgress      EventKind = "FlightProgress"
	EventDailyStats          EventKind = "DailyStats"
)

// ScheduledEvent pairs an event with its absolute time. Seq records insertion
// order: events sharing a time fire first-scheduled-first, which flight
// arrival handling depends on.
type ScheduledEvent struct {
	Time  models.GameTime `json:"time"`
	Seq   uint64          `json:"seq"`
	Kind  EventKind       `json:"kind"`
	Plane *int            `json:"plane,omitempty"`
}

type eventHeap []*ScheduledEvent

func (h eventHeap) Len() int { return len(h) }
func (h eventHeap) Less(i, j int) bool {
	if h[i].Time != h[j].Time {
		return h[i].Time < h[j].Time
	}
	return h[i].Seq < h[j].Seq
}
func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) { *h = append(*h, x.(*ScheduledEvent)) }
func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	ev := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return ev
}

// EventQueue is a min-priority queue over (time, seq).
type EventQueue struct {
	items   eventHeap
	nextSeq uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Schedule enqueues an event at absolute time t.
func (q *EventQueue) Schedule(t models.GameTime, kind EventKind, plane *int) {
	ev := &ScheduledEvent{Time: t, Seq: q.nextSeq, Kind: kind, Plane: plane}
	q.nextSeq++
	heap.Push(&q.items, ev)
}

// Peek returns the earliest event without removing it, or nil.
func (q *EventQueue) Peek() *ScheduledEvent {
	if len(q.items) == 0 {
		return nil
	}
	return q.items[0]
}

// Pop removes and returns the earliest event, or nil.
func (q *EventQueue) Pop() *ScheduledEvent {
	if len(q.items) == 0 {
		return nil
	}
	return heap.Pop(&q.items).(*ScheduledEvent)
}

func (q *EventQueue) Len() int {
	return len(q.items)
}

// Snapshot returns the pending events ordered by pop order.
func (q *EventQueue) Snapshot() []*ScheduledEvent {
	events := make([]*ScheduledEvent, len(q.items))
	copy(events, q.items)
	sort.Slice(events, func(i, j int) bool {
		if events[i].Time != events[j].Time {
			return events[i].Time < events[j].Time
		}
		return events[i].Seq < events[j].Seq
	})
	return events
}

type queueState struct {
	NextSeq uint64            `json:"next_seq"`
	Items   []*ScheduledEvent `json:"items"`
}

// The queue serializes as its pop-ordered sequence; reinserting the items
// with their recorded seq values reproduces identical pop order.
func (q *EventQueue) MarshalJSON() ([]byte, error) {
	return json.Marshal(queueState{NextSeq: q.nextSeq, Items: q.Snapshot()})
}

func (q *EventQueue) UnmarshalJSON(data []byte) error {
	var state queueState
	if err := json.Unmarshal(data, &state); err != nil {
		return err
	}
	q.nextSeq = state.NextSeq
	q.items = eventHeap(state.Items)
	heap.Init(&q.items)
	return nil
}
