package http

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"gantt-chart/internal/view"
)

// processCreateReq binds and validates the create view body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds the update body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, req.validate()
}

// processRenderReq binds the render query and resolves "today".
func (h *handler) processRenderReq(c *gin.Context) (view.RenderInput, error) {
	var req renderReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return view.RenderInput{}, err
	}
	if err := req.validate(); err != nil {
		return view.RenderInput{}, err
	}

	in := view.RenderInput{
		ID:      c.Param("id"),
		Format:  view.Format(req.Format),
		APIBase: strings.TrimSuffix(c.Request.URL.Path, "/render"),
	}
	if req.Today != "" {
		today, err := h.dateMath.Resolve(req.Today, time.Now())
		if err != nil {
			return view.RenderInput{}, fmt.Errorf("today: %w", err)
		}
		in.Today = today.AbsoluteTime
	}
	return in, nil
}

// processGestureReq binds and validates the viewport gesture body.
func (h *handler) processGestureReq(c *gin.Context) (gestureReq, error) {
	var req gestureReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, req.validate()
}
