package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope das listagens do painel da clínica (médicos, pacientes,
// agendamentos).
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func List[T any](c *gin.Context, items []T) {
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  items,
		Total: len(items),
	})
}
