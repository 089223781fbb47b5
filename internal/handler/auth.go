package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OAuthCallback обработчик для GET /auth/callback - завершает вход через
// OAuth-провайдера: меняет код на сессию и ставит cookie.
func (h *Handler) OAuthCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "VALIDATION_FAILED", "message": "Отсутствует код авторизации"})
		return
	}
	token, err := h.AuthService.ExchangeCode(code)
	if err != nil {
		respondError(c, err)
		return
	}
	// Cookie на 30 дней, только для HTTP
	c.SetCookie(SessionCookie, token, 30*24*3600, "/", "", false, true)
	redirect := c.Query("next")
	if redirect == "" {
		redirect = "/"
	}
	c.Redirect(http.StatusFound, redirect)
}

// Logout обработчик для POST /auth/logout - завершает сессию.
func (h *Handler) Logout(c *gin.Context) {
	token, err := c.Cookie(SessionCookie)
	if err == nil && token != "" {
		if err := h.AuthService.Logout(token); err != nil {
			respondError(c, err)
			return
		}
	}
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Сессия завершена"})
}

// Me обработчик для GET /api/me - возвращает профиль текущего пользователя.
func (h *Handler) Me(c *gin.Context) {
	profile, err := h.AuthService.GetProfile(profileID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
