package realtime

import (
	"reflect"
	"testing"

	"github.com/SeungJin051/trelio-sub001/internal/model"
)

func TestJoinLeaveSnapshot(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	hub.Join(1, 20)
	hub.Join(1, 10)
	if got := hub.Snapshot(1); !reflect.DeepEqual(got, []int{10, 20}) {
		t.Fatalf("Snapshot = %v, want [10 20]", got)
	}

	hub.Leave(1, 20)
	if got := hub.Snapshot(1); !reflect.DeepEqual(got, []int{10}) {
		t.Fatalf("Snapshot после Leave = %v, want [10]", got)
	}

	// Присутствие в другом плане независимо
	if got := hub.Snapshot(2); len(got) != 0 {
		t.Fatalf("Snapshot чужого плана = %v, want пусто", got)
	}
}

func TestJoinCountsConnections(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	// Два соединения одного пользователя (две вкладки)
	hub.Join(1, 10)
	hub.Join(1, 10)
	hub.Leave(1, 10)
	if got := hub.Snapshot(1); !reflect.DeepEqual(got, []int{10}) {
		t.Fatalf("после закрытия одной вкладки Snapshot = %v, want [10]", got)
	}
	hub.Leave(1, 10)
	if got := hub.Snapshot(1); len(got) != 0 {
		t.Fatalf("после закрытия всех вкладок Snapshot = %v, want пусто", got)
	}
}

func TestSubscribeReceivesPresenceEvents(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	events, cancel := hub.Subscribe(1)
	defer cancel()

	hub.Join(1, 10)
	ev := <-events
	if ev.Type != EventPresence {
		t.Fatalf("тип события = %q, want %q", ev.Type, EventPresence)
	}
	if !reflect.DeepEqual(ev.Online, []int{10}) {
		t.Fatalf("Online = %v, want [10]", ev.Online)
	}
}

func TestPublishReachesOnlyPlanSubscribers(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	mine, cancelMine := hub.Subscribe(1)
	defer cancelMine()
	other, cancelOther := hub.Subscribe(2)
	defer cancelOther()

	hub.Publish(1, Event{Type: EventInvalidate, PlanID: 1, Table: "blocks"})

	ev := <-mine
	if ev.Table != "blocks" {
		t.Fatalf("Table = %q, want blocks", ev.Table)
	}
	select {
	case ev := <-other:
		t.Fatalf("подписчик чужого плана получил событие: %+v", ev)
	default:
	}
}

func TestCancelClosesChannel(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	events, cancel := hub.Subscribe(1)
	cancel()
	if _, ok := <-events; ok {
		t.Fatal("канал должен закрыться после отписки")
	}
	// Повторная отписка безопасна
	cancel()
}

func TestMergeOnlineIdempotent(t *testing.T) {
	participants := []model.ParticipantInfo{
		{Participant: model.Participant{ProfileID: 10}},
		{Participant: model.Participant{ProfileID: 20}},
		{Participant: model.Participant{ProfileID: 30}},
	}
	snapshot := []int{10, 30}

	first := MergeOnline(participants, snapshot)
	second := MergeOnline(first, snapshot)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("повторное применение снимка изменило результат: %+v != %+v", first, second)
	}
	if !first[0].IsOnline || first[1].IsOnline || !first[2].IsOnline {
		t.Fatalf("флаги присутствия неверны: %+v", first)
	}

	// Новый снимок полностью замещает старый
	third := MergeOnline(first, []int{20})
	if third[0].IsOnline || !third[1].IsOnline || third[2].IsOnline {
		t.Fatalf("снимок не замещает прежние флаги: %+v", third)
	}
}
