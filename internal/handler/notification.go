package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// IssueLinkCode обработчик для POST /api/notifications/link-code - выдает
// одноразовый код привязки Telegram-чата к профилю.
func (h *Handler) IssueLinkCode(c *gin.Context) {
	code, err := h.NotificationService.IssueLinkCode(profileID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": code})
}
