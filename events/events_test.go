package events

import (
	"context"
	"errors"
	"testing"
)

type recorder struct {
	got []Event
	err error
}

func (r *recorder) Publish(_ context.Context, e Event) error {
	r.got = append(r.got, e)
	return r.err
}

func (r *recorder) Close() error { return nil }

func TestNotifySwallowsPublishErrors(t *testing.T) {
	r := &recorder{err: errors.New("broker down")}
	Notify(context.Background(), r, Event{Type: BusinessRegistered, BusinessID: 3})
	if len(r.got) != 1 || r.got[0].BusinessID != 3 {
		t.Fatalf("unexpected events %+v", r.got)
	}
}

func TestNotifyNilPublisher(t *testing.T) {
	Notify(context.Background(), nil, Event{Type: BusinessStatusChanged})
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = Nop{}
	if err := p.Publish(context.Background(), Event{}); err != nil {
		t.Fatal(err)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
}
