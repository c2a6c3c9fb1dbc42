package event

import "testing"

type countingListener struct {
	got []Event
}

func (c *countingListener) OnEvent(e Event) { c.got = append(c.got, e) }

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	a := &countingListener{}
	b := &countingListener{}
	d.Subscribe(EnemyKilled, a)
	d.Subscribe(GameOver, b)

	d.Dispatch(Event{Type: EnemyKilled, Frame: 3, Data: Kill{Reward: 10, Score: 1}})

	if len(a.got) != 1 {
		t.Fatalf("a received %d events, want 1", len(a.got))
	}
	if a.got[0].Frame != 3 {
		t.Errorf("Frame = %d, want 3", a.got[0].Frame)
	}
	if k, ok := a.got[0].Data.(Kill); !ok || k.Reward != 10 {
		t.Errorf("Data = %#v, want Kill{Reward: 10}", a.got[0].Data)
	}
	if len(b.got) != 0 {
		t.Errorf("b received %d events, want 0", len(b.got))
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a := &countingListener{}
	d.Subscribe(EnemySpawned, a)
	d.Unsubscribe(EnemySpawned, a)
	d.Dispatch(Event{Type: EnemySpawned})
	if len(a.got) != 0 {
		t.Errorf("received %d events after Unsubscribe, want 0", len(a.got))
	}
}

func TestSubscribeAll(t *testing.T) {
	d := NewDispatcher()
	a := &countingListener{}
	d.SubscribeAll(a)
	for _, typ := range AllTypes {
		d.Dispatch(Event{Type: typ})
	}
	if len(a.got) != len(AllTypes) {
		t.Errorf("received %d events, want %d", len(a.got), len(AllTypes))
	}
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	n := 0
	d.Subscribe(WinLatched, ListenerFunc(func(Event) { n++ }))
	d.Dispatch(Event{Type: WinLatched})
	if n != 1 {
		t.Errorf("calls = %d, want 1", n)
	}
}
