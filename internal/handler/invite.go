package handler

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Формат идентификатора ссылки-приглашения (UUID, 36 символов).
var shareIDPattern = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)

// isShareID проверяет формат идентификатора до обращения к хранилищу.
// Шаблон пропускает строки вроде 36 дефисов, поэтому дополнительно
// проверяем разбор UUID: колонка share_id имеет тип uuid.
func isShareID(s string) bool {
	if !shareIDPattern.MatchString(s) {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// VerifyInvite обработчик для GET /api/invites/plan/:shareId - возвращает
// краткие сведения о плане по ссылке. Аутентификация не требуется:
// страницу приглашения видят и невошедшие пользователи.
func (h *Handler) VerifyInvite(c *gin.Context) {
	shareID := c.Param("shareId")
	if !isShareID(shareID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "VALIDATION_FAILED", "message": "Некорректная ссылка-приглашение"})
		return
	}
	preview, err := h.InviteService.Verify(shareID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

// AcceptInvite обработчик для POST /api/invites/plan/:shareId/accept -
// присоединяет текущего пользователя к плану.
func (h *Handler) AcceptInvite(c *gin.Context) {
	shareID := c.Param("shareId")
	if !isShareID(shareID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "VALIDATION_FAILED", "message": "Некорректная ссылка-приглашение"})
		return
	}
	planID, err := h.InviteService.Accept(shareID, profileID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan_id": planID})
}
