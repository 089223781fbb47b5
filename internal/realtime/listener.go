package realtime

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/lib/pq"
)

// NotifyChannel - канал Postgres NOTIFY, в который пишут триггеры миграций.
const NotifyChannel = "trelio_changes"

// changePayload - полезная нагрузка уведомления триггера.
type changePayload struct {
	Table  string `json:"table"`
	PlanID int    `json:"plan_id"`
}

// Listener слушает Postgres NOTIFY и превращает уведомления об изменениях
// таблиц в события инвалидации на шине. Порядок доставки не гарантируется:
// по каждому событию клиент перечитывает состояние целиком.
type Listener struct {
	pl  *pq.Listener
	hub *Hub
}

// NewListener создает слушатель NOTIFY для заданного DSN.
func NewListener(dsn string, hub *Hub) (*Listener, error) {
	pl := pq.NewListener(dsn, 2*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			log.Printf("Ошибка слушателя Postgres: %v", err)
		}
	})
	if err := pl.Listen(NotifyChannel); err != nil {
		pl.Close()
		return nil, err
	}
	return &Listener{pl: pl, hub: hub}, nil
}

// Run обрабатывает уведомления до отмены контекста.
func (l *Listener) Run(ctx context.Context) {
	ping := time.NewTicker(90 * time.Second)
	defer ping.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case n := <-l.pl.Notify:
			if n == nil {
				// nil приходит после переподключения - состояние могло быть
				// пропущено, но клиенты перечитают его по следующему событию
				continue
			}
			var p changePayload
			if err := json.Unmarshal([]byte(n.Extra), &p); err != nil {
				log.Printf("Некорректная нагрузка NOTIFY: %v", err)
				continue
			}
			l.hub.Publish(p.PlanID, Event{Type: EventInvalidate, PlanID: p.PlanID, Table: p.Table})
		case <-ping.C:
			if err := l.pl.Ping(); err != nil {
				log.Printf("Ping слушателя Postgres: %v", err)
			}
		}
	}
}

// Close закрывает соединение слушателя.
func (l *Listener) Close() error {
	return l.pl.Close()
}
