package handler

import (
	"net/http"
	"strconv"

	"github.com/SeungJin051/trelio-sub001/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateBlock обработчик для POST /api/blocks - создает блок расписания.
func (h *Handler) CreateBlock(c *gin.Context) {
	var in service.BlockInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, service.ErrValidation)
		return
	}
	block, err := h.BlockService.Create(profileID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, block)
}

// ListBlocks обработчик для GET /api/blocks?plan_id= - блоки плана
// в порядке (день, позиция).
func (h *Handler) ListBlocks(c *gin.Context) {
	planID, err := strconv.Atoi(c.Query("plan_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "VALIDATION_FAILED", "message": "Отсутствует или некорректен plan_id"})
		return
	}
	blocks, err := h.BlockService.List(planID, profileID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, blocks)
}

// UpdateBlock обработчик для PATCH/PUT /api/blocks/:id.
func (h *Handler) UpdateBlock(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var in service.BlockInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, service.ErrValidation)
		return
	}
	block, err := h.BlockService.Update(id, profileID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, block)
}

// MoveBlock обработчик для POST /api/blocks/:id/move - перемещает блок
// в указанный день и позицию.
func (h *Handler) MoveBlock(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var body struct {
		DayNumber  int `json:"day_number" binding:"required"`
		OrderIndex int `json:"order_index"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, service.ErrValidation)
		return
	}
	if err := h.BlockService.Move(id, profileID(c), body.DayNumber, body.OrderIndex); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Блок перемещен"})
}

// DeleteBlock обработчик для DELETE /api/blocks/:id.
func (h *Handler) DeleteBlock(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := h.BlockService.Delete(id, profileID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Блок удален"})
}
