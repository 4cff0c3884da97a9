package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-taskhub/internal/service"
	"go-taskhub/internal/transport/http/response"
)

type CategoryHandler struct {
	svc *service.CategoryService
}

func NewCategoryHandler(svc *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

func (h *CategoryHandler) Mount(g *gin.RouterGroup) {
	g.GET("/categories", h.list)
	g.POST("/categories", h.create)
	g.DELETE("/categories/:id", h.delete)
}

func (h *CategoryHandler) list(c *gin.Context) {
	cats, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (h *CategoryHandler) create(c *gin.Context) {
	var in service.CreateCategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	cat, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *CategoryHandler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Category deleted successfully")
}
