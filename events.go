package remit

import (
	"fmt"

	"github.com/tendermint/tendermint/libs/common"
)

// Event is a notification record produced by a state transition. Events are
// published to the outside world as transaction tags and the core does not
// depend on anyone reading them.
type Event struct {
	// Kind names what happened, ie "remittance_created".
	Kind string
	// Attrs are ordered key/value details.
	Attrs []common.KVPair
}

// NewEvent returns an event of given kind. Attributes are provided as a flat
// list of key, value pairs. Values are formatted with fmt.
func NewEvent(kind string, keyvals ...interface{}) Event {
	if len(keyvals)%2 != 0 {
		panic("odd number of event attributes")
	}
	ev := Event{Kind: kind}
	for i := 0; i < len(keyvals); i += 2 {
		ev.Attrs = append(ev.Attrs, common.KVPair{
			Key:   []byte(fmt.Sprint(keyvals[i])),
			Value: []byte(fmt.Sprint(keyvals[i+1])),
		})
	}
	return ev
}

// Attr returns the value of the first attribute with the given key.
func (e Event) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if string(a.Key) == key {
			return string(a.Value), true
		}
	}
	return "", false
}

// EventSink accepts emitted events.
type EventSink interface {
	Emit(Event)
}

// EventBuffer is an EventSink that keeps all events in memory, in the order
// they were emitted.
type EventBuffer struct {
	events []Event
}

var _ EventSink = (*EventBuffer)(nil)

// Emit appends an event.
func (b *EventBuffer) Emit(e Event) {
	b.events = append(b.events, e)
}

// Events returns all collected events.
func (b *EventBuffer) Events() []Event {
	return b.events
}

// EventKey is the tag key under which event kinds are published.
const EventKey = "event"

// EventTags converts events into tendermint tags. Each event contributes an
// "event" tag followed by its attributes prefixed with the event kind.
func EventTags(events []Event) []common.KVPair {
	var tags []common.KVPair
	for _, e := range events {
		tags = append(tags, common.KVPair{Key: []byte(EventKey), Value: []byte(e.Kind)})
		for _, a := range e.Attrs {
			tags = append(tags, common.KVPair{
				Key:   []byte(e.Kind + "." + string(a.Key)),
				Value: a.Value,
			})
		}
	}
	return tags
}

// DiscardEvents is an EventSink that drops everything.
var DiscardEvents EventSink = discardSink{}

type discardSink struct{}

func (discardSink) Emit(Event) {}
