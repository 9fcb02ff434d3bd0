package httpresp

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Envelope struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data"`
	Message   string    `json:"message,omitempty"`
	Code      string    `json:"code"`
	Timestamp time.Time `json:"timestamp"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

type PageResponse[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

func OK(c *gin.Context, data any) {
	write(c, http.StatusOK, data, "")
}

func OKMessage(c *gin.Context, data any, message string) {
	write(c, http.StatusOK, data, message)
}

func Created(c *gin.Context, data any) {
	write(c, http.StatusCreated, data, "")
}

func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	write(c, http.StatusOK, data, "")
}

func Page[T any](c *gin.Context, items []T, page, limit int, total int64) {
	if items == nil {
		items = []T{}
	}

	pages := int64(0)
	if limit > 0 {
		pages = (total + int64(limit) - 1) / int64(limit)
	}

	write(c, http.StatusOK, PageResponse[T]{
		Items: items,
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	}, "")
}

func write(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Envelope{
		Success:   true,
		Data:      data,
		Message:   message,
		Code:      "OK",
		Timestamp: time.Now().UTC(),
	})
}
