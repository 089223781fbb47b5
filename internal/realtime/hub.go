// Package realtime реализует внутрипроцессную шину событий плана:
// присутствие участников и сигналы инвалидации кэша из Postgres NOTIFY.
package realtime

import (
	"sort"
	"sync"

	"github.com/SeungJin051/trelio-sub001/internal/model"
)

// Типы событий, рассылаемых подписчикам плана.
const (
	EventPresence   = "presence"   // полный снимок присутствующих
	EventInvalidate = "invalidate" // изменились данные таблицы, кэш нужно перечитать
)

// Event - событие, доставляемое подписчикам плана.
type Event struct {
	Type   string `json:"type"`
	PlanID int    `json:"plan_id"`
	Table  string `json:"table,omitempty"`
	Online []int  `json:"online,omitempty"`
}

// Hub - шина событий с учетом присутствия. Создается в main и передается
// зависимостям явно; время жизни ограничено вызовом Close.
type Hub struct {
	mu       sync.Mutex
	subs     map[int]map[chan Event]struct{} // plan_id -> подписчики
	presence map[int]map[int]int             // plan_id -> profile_id -> число соединений
	closed   bool
}

// NewHub создает новую шину событий.
func NewHub() *Hub {
	return &Hub{
		subs:     make(map[int]map[chan Event]struct{}),
		presence: make(map[int]map[int]int),
	}
}

// Subscribe подписывает на события плана. Возвращает канал событий и функцию
// отписки; после Close шины канал закрывается.
func (h *Hub) Subscribe(planID int) (<-chan Event, func()) {
	ch := make(chan Event, 16)
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(ch)
		return ch, func() {}
	}
	if h.subs[planID] == nil {
		h.subs[planID] = make(map[chan Event]struct{})
	}
	h.subs[planID][ch] = struct{}{}

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if set, ok := h.subs[planID]; ok {
			if _, ok := set[ch]; ok {
				delete(set, ch)
				close(ch)
				if len(set) == 0 {
					delete(h.subs, planID)
				}
			}
		}
	}
	return ch, cancel
}

// Publish рассылает событие всем подписчикам плана. Медленные подписчики
// с заполненным буфером пропускают событие: доставка не гарантируется,
// клиент в любом случае перечитывает полное состояние.
func (h *Hub) Publish(planID int, ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.publishLocked(planID, ev)
}

func (h *Hub) publishLocked(planID int, ev Event) {
	if h.closed {
		return
	}
	for ch := range h.subs[planID] {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Join отмечает пользователя присутствующим в плане и рассылает новый снимок.
// Повторный Join того же пользователя лишь увеличивает счетчик соединений.
func (h *Hub) Join(planID, profileID int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.presence[planID] == nil {
		h.presence[planID] = make(map[int]int)
	}
	h.presence[planID][profileID]++
	h.publishLocked(planID, Event{Type: EventPresence, PlanID: planID, Online: h.snapshotLocked(planID)})
}

// Leave снимает отметку присутствия и рассылает новый снимок.
func (h *Hub) Leave(planID, profileID int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.presence[planID]; ok {
		if conns[profileID] > 1 {
			conns[profileID]--
		} else {
			delete(conns, profileID)
			if len(conns) == 0 {
				delete(h.presence, planID)
			}
		}
	}
	h.publishLocked(planID, Event{Type: EventPresence, PlanID: planID, Online: h.snapshotLocked(planID)})
}

// Snapshot возвращает отсортированный список профилей, присутствующих в плане.
func (h *Hub) Snapshot(planID int) []int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshotLocked(planID)
}

func (h *Hub) snapshotLocked(planID int) []int {
	ids := make([]int, 0, len(h.presence[planID]))
	for id := range h.presence[planID] {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Close закрывает шину и каналы всех подписчиков.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for _, set := range h.subs {
		for ch := range set {
			close(ch)
		}
	}
	h.subs = make(map[int]map[chan Event]struct{})
	h.presence = make(map[int]map[int]int)
}

// MergeOnline заново проставляет участникам флаг IsOnline по полному снимку
// присутствия. Снимок - единственный источник истины: применение одного и
// того же снимка дважды дает одинаковый результат.
func MergeOnline(participants []model.ParticipantInfo, online []int) []model.ParticipantInfo {
	set := make(map[int]struct{}, len(online))
	for _, id := range online {
		set[id] = struct{}{}
	}
	for i := range participants {
		_, ok := set[participants[i].ProfileID]
		participants[i].IsOnline = ok
	}
	return participants
}
