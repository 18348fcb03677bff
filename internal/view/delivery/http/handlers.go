package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gantt-chart/internal/view"
	"gantt-chart/pkg/response"
)

// HeaderRevision carries the view revision on rendered documents.
const HeaderRevision = "X-View-Revision"

// Create godoc
// @Summary     Create a view
// @Description Opens a chart session over a stored dataset. The dataset's date range is frozen for the lifetime of the view.
// @Tags        Views
// @Accept      json
// @Produce     json
// @Param       body body createReq true "View"
// @Success     200  {object} stateResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/views [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newStateResp(output))
}

// Get godoc
// @Summary     Get a view
// @Description Returns the view's configuration, collapse state and viewport.
// @Tags        Views
// @Produce     json
// @Param       id path string true "View ID"
// @Success     200 {object} stateResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/views/{id} [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Get(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newStateResp(output))
}

// Delete godoc
// @Summary     Delete a view
// @Description Unmounts the chart and drops its collapse state and viewport.
// @Tags        Views
// @Produce     json
// @Param       id path string true "View ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/views/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Update godoc
// @Summary     Update a view
// @Description Swaps the dataset, width or grouping. Omitted fields are left unchanged.
// @Tags        Views
// @Accept      json
// @Produce     json
// @Param       id   path string    true "View ID"
// @Param       body body updateReq true "Changes"
// @Success     200  {object} stateResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/views/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newStateResp(output))
}

// Render godoc
// @Summary     Render a view
// @Description Renders the chart. json returns the scene graph in the usual envelope; svg, png and html return the raw document.
// @Tags        Views
// @Produce     json,image/svg+xml,image/png,text/html
// @Param       id     path  string true  "View ID"
// @Param       format query string false "json, svg, png or html (default: json)"
// @Param       today  query string false "Reference date for the today line (default: now)"
// @Success     200 {object} renderResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/views/{id}/render [GET]
func (h *handler) Render(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processRenderReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Render(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Render: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Header(HeaderRevision, strconv.FormatInt(output.Revision, 10))
	if output.Format == view.FormatJSON {
		response.OK(c, renderResp{Revision: output.Revision, Scene: output.Scene})
		return
	}
	c.Data(http.StatusOK, output.ContentType, output.Body)
}

// ToggleGroup godoc
// @Summary     Toggle a group
// @Description Collapses or expands a group header row.
// @Tags        Views
// @Produce     json
// @Param       id  path string true "View ID"
// @Param       key path string true "Group key"
// @Success     200 {object} toggleResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/views/{id}/groups/{key}/toggle [POST]
func (h *handler) ToggleGroup(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ToggleGroup(ctx, view.ToggleInput{ID: c.Param("id"), Key: c.Param("key")})
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleGroup: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newToggleResp(output))
}

// ToggleTask godoc
// @Summary     Toggle a task
// @Description Collapses or expands a task that has subtasks.
// @Tags        Views
// @Produce     json
// @Param       id      path string true "View ID"
// @Param       task_id path string true "Task ID"
// @Success     200 {object} toggleResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/views/{id}/tasks/{task_id}/toggle [POST]
func (h *handler) ToggleTask(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ToggleTask(ctx, view.ToggleInput{ID: c.Param("id"), Key: c.Param("task_id")})
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleTask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newToggleResp(output))
}

// ClickTask godoc
// @Summary     Click a task
// @Description Delivers a click on a visible task bar or label to the view's task-click handler.
// @Tags        Views
// @Produce     json
// @Param       id      path string true "View ID"
// @Param       task_id path string true "Task ID"
// @Success     200 {object} clickResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/views/{id}/tasks/{task_id}/click [POST]
func (h *handler) ClickTask(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ClickTask(ctx, view.ToggleInput{ID: c.Param("id"), Key: c.Param("task_id")})
	if err != nil {
		h.l.Errorf(ctx, "uc.ClickTask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newClickResp(output))
}

// Gesture godoc
// @Summary     Apply a viewport gesture
// @Description Feeds a wheel, pan, zoom or reset gesture to the view's zoom/pan controller and returns the new projections.
// @Tags        Views
// @Accept      json
// @Produce     json
// @Param       id   path string     true "View ID"
// @Param       body body gestureReq true "Gesture"
// @Success     200  {object} gestureResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/views/{id}/viewport [POST]
func (h *handler) Gesture(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGestureReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Gesture(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Gesture: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newGestureResp(output))
}
