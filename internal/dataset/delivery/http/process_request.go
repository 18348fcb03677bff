package http

import (
	"github.com/gin-gonic/gin"

	"gantt-chart/internal/dataset"
)

// processCreateReq binds the create body and resolves task dates.
func (h *handler) processCreateReq(c *gin.Context) (dataset.CreateInput, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return dataset.CreateInput{}, err
	}
	if err := req.validate(); err != nil {
		return dataset.CreateInput{}, err
	}
	return req.toInput(h.dateMath, h.now())
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processImportCalendarReq binds the import body and resolves its range.
func (h *handler) processImportCalendarReq(c *gin.Context) (dataset.ImportCalendarInput, error) {
	var req importCalendarReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return dataset.ImportCalendarInput{}, err
	}
	if err := req.validate(); err != nil {
		return dataset.ImportCalendarInput{}, err
	}
	return req.toInput(h.dateMath, h.now())
}
