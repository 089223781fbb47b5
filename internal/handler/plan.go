package handler

import (
	"net/http"
	"strconv"

	"github.com/SeungJin051/trelio-sub001/internal/service"

	"github.com/gin-gonic/gin"
)

// intParam извлекает числовой параметр пути.
func intParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "VALIDATION_FAILED", "message": "Некорректный идентификатор"})
		return 0, false
	}
	return id, true
}

// CreatePlan обработчик для POST /api/plans - создает новый план.
func (h *Handler) CreatePlan(c *gin.Context) {
	var in service.PlanInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, service.ErrValidation)
		return
	}
	plan, err := h.PlanService.Create(profileID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// ListPlans обработчик для GET /api/plans - планы текущего пользователя.
func (h *Handler) ListPlans(c *gin.Context) {
	plans, err := h.PlanService.List(profileID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// GetPlan обработчик для GET /api/plans/:id.
func (h *Handler) GetPlan(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	plan, err := h.PlanService.Get(id, profileID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// UpdatePlan обработчик для PATCH /api/plans/:id.
func (h *Handler) UpdatePlan(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var in service.PlanInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, service.ErrValidation)
		return
	}
	plan, err := h.PlanService.Update(id, profileID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// DeletePlan обработчик для DELETE /api/plans/:id - удаление владельцем.
func (h *Handler) DeletePlan(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := h.PlanService.Delete(id, profileID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "План удален"})
}

// PlanSummary обработчик для GET /api/plans/:id/summary - оценки плана.
func (h *Handler) PlanSummary(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	summary, err := h.PlanService.Summarize(id, profileID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ListParticipants обработчик для GET /api/plans/:id/participants -
// участники плана с флагами присутствия.
func (h *Handler) ListParticipants(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	participants, err := h.PlanService.Participants(id, profileID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, participants)
}

// ChangeRole обработчик для PATCH /api/plans/:id/participants/:profileId -
// смена роли участника владельцем.
func (h *Handler) ChangeRole(c *gin.Context) {
	planID, ok := intParam(c, "id")
	if !ok {
		return
	}
	targetID, ok := intParam(c, "profileId")
	if !ok {
		return
	}
	var body struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, service.ErrValidation)
		return
	}
	if err := h.PlanService.ChangeRole(planID, profileID(c), targetID, body.Role); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Роль обновлена"})
}

// ListActivities обработчик для GET /api/plans/:id/activities - журнал плана.
func (h *Handler) ListActivities(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	activities, err := h.ActivityService.List(id, profileID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}
