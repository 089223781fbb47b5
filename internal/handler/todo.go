package handler

import (
	"net/http"
	"strconv"

	"github.com/SeungJin051/trelio-sub001/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateTodo обработчик для POST /api/todos - добавляет задачу.
func (h *Handler) CreateTodo(c *gin.Context) {
	var in service.TodoInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, service.ErrValidation)
		return
	}
	todo, err := h.TodoService.Create(profileID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, todo)
}

// ListTodos обработчик для GET /api/todos?plan_id= - задачи плана.
func (h *Handler) ListTodos(c *gin.Context) {
	planID, err := strconv.Atoi(c.Query("plan_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "VALIDATION_FAILED", "message": "Отсутствует или некорректен plan_id"})
		return
	}
	todos, err := h.TodoService.List(planID, profileID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todos)
}

// UpdateTodo обработчик для PATCH /api/todos/:id - частичное обновление.
func (h *Handler) UpdateTodo(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var in service.TodoUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, service.ErrValidation)
		return
	}
	todo, err := h.TodoService.Update(id, profileID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

// DeleteTodo обработчик для DELETE /api/todos/:id.
func (h *Handler) DeleteTodo(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := h.TodoService.Delete(id, profileID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Задача удалена"})
}
