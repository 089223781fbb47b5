package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/SeungJin051/trelio-sub001/internal/realtime"
	"github.com/SeungJin051/trelio-sub001/internal/service"

	"github.com/gin-gonic/gin"
)

// Имя cookie с токеном сессии.
const SessionCookie = "trelio_session"

// Handler структурирует зависимости сервисов для обработки HTTP-запросов.
type Handler struct {
	AuthService         *service.AuthService
	PlanService         *service.PlanService
	BlockService        *service.BlockService
	TodoService         *service.TodoService
	InviteService       *service.InviteService
	ActivityService     *service.ActivityService
	NotificationService *service.NotificationService
	Hub                 *realtime.Hub
}

// NewHandler создает новый Handler с внедрением зависимостей (сервисов).
func NewHandler(as *service.AuthService, ps *service.PlanService, bs *service.BlockService,
	ts *service.TodoService, is *service.InviteService, acs *service.ActivityService,
	ns *service.NotificationService, hub *realtime.Hub) *Handler {
	return &Handler{
		AuthService:         as,
		PlanService:         ps,
		BlockService:        bs,
		TodoService:         ts,
		InviteService:       is,
		ActivityService:     acs,
		NotificationService: ns,
		Hub:                 hub,
	}
}

// respondError переводит ошибку сервиса в фиксированный HTTP-статус и код.
// Все прочие ошибки (сбои хранилища и т.п.) логируются на сервере и уходят
// клиенту одинаковым ответом 500 без деталей. Повторы не выполняются.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "UNAUTHENTICATED", "message": "Требуется вход в систему"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "FORBIDDEN", "message": "Недостаточно прав для этого действия"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "NOT_FOUND", "message": "Запрошенные данные не найдены"})
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "VALIDATION_FAILED", "message": "Проверьте поля запроса"})
	case errors.Is(err, service.ErrAlreadyParticipant):
		c.JSON(http.StatusConflict, gin.H{"error": "ALREADY_PARTICIPANT", "message": "Вы уже участник этого плана"})
	case errors.Is(err, service.ErrLimitExceeded):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "PARTICIPATION_LIMIT_EXCEEDED", "message": "Превышен лимит одновременного участия в планах"})
	case errors.Is(err, service.ErrLinkClosed):
		c.JSON(http.StatusGone, gin.H{"error": "LINK_CLOSED", "message": "Ссылка-приглашение закрыта"})
	default:
		log.Printf("Внутренняя ошибка: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "REMOTE_FAILURE", "message": "Внутренняя ошибка сервера"})
	}
}

// RequireAuth - middleware аутентификации по cookie сессии.
// Кладет ID профиля в контекст запроса под ключом "profileID".
func (h *Handler) RequireAuth(c *gin.Context) {
	token, err := c.Cookie(SessionCookie)
	if err != nil {
		respondError(c, service.ErrUnauthenticated)
		c.Abort()
		return
	}
	profileID, err := h.AuthService.Authenticate(token)
	if err != nil {
		respondError(c, err)
		c.Abort()
		return
	}
	c.Set("profileID", profileID)
	c.Next()
}

// profileID извлекает ID профиля, положенный RequireAuth.
func profileID(c *gin.Context) int {
	return c.GetInt("profileID")
}
