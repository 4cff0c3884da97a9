package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-taskhub/internal/service"
	"go-taskhub/internal/transport/http/response"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Mount(g *gin.RouterGroup) {
	g.GET("/users", h.list)
	g.POST("/users", h.create)
	g.DELETE("/users/:id", h.delete)
}

func (h *UserHandler) list(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) create(c *gin.Context) {
	var in service.CreateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	user, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "User deleted successfully")
}
