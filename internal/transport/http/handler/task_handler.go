package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-taskhub/internal/domain"
	"go-taskhub/internal/service"
	"go-taskhub/internal/transport/http/response"
)

type TaskHandler struct {
	svc *service.TaskService
}

func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

func (h *TaskHandler) Mount(g *gin.RouterGroup) {
	g.GET("/tasks", h.list)
	g.POST("/tasks", h.create)
	g.GET("/tasks/:id", h.get)
	g.PUT("/tasks/:id", h.update)
	g.DELETE("/tasks/:id", h.delete)
}

func (h *TaskHandler) list(c *gin.Context) {
	var f domain.TaskFilters
	if v, ok := c.GetQuery("completed"); ok {
		// anything but the literal "true" filters for incomplete
		b := v == "true"
		f.Completed = &b
	}
	f.CategoryID = c.Query("categoryId")
	f.Priority = c.Query("priority")

	tasks, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) get(c *gin.Context) {
	task, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) create(c *gin.Context) {
	var in service.CreateTaskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	task, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) update(c *gin.Context) {
	var in service.UpdateTaskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	task, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Task deleted successfully")
}
