package handler

import (
	"io"

	"github.com/SeungJin051/trelio-sub001/internal/realtime"

	"github.com/gin-gonic/gin"
)

// PlanEvents обработчик для GET /api/plans/:id/events - SSE-поток событий
// плана: присутствие участников и сигналы инвалидации кэша. Подключение
// отмечает пользователя присутствующим, разрыв соединения - отсутствующим.
func (h *Handler) PlanEvents(c *gin.Context) {
	planID, ok := intParam(c, "id")
	if !ok {
		return
	}
	pid := profileID(c)
	// Только участники видят события плана
	if _, err := h.PlanService.Participant(planID, pid); err != nil {
		respondError(c, err)
		return
	}

	events, cancel := h.Hub.Subscribe(planID)
	defer cancel()
	h.Hub.Join(planID, pid)
	defer h.Hub.Leave(planID, pid)

	// Стартовый снимок, чтобы клиент сразу получил актуальное присутствие
	c.SSEvent(realtime.EventPresence, realtime.Event{
		Type:   realtime.EventPresence,
		PlanID: planID,
		Online: h.Hub.Snapshot(planID),
	})
	c.Writer.Flush()

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(ev.Type, ev)
			return true
		}
	})
}
