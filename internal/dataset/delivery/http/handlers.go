package http

import (
	"github.com/gin-gonic/gin"

	"gantt-chart/pkg/response"
)

// Create godoc
// @Summary     Create a dataset
// @Description Stores an immutable task list and returns its dataset id. Dates accept "2006-01-02", RFC3339 or relative phrases such as "in 3 days".
// @Tags        Datasets
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Dataset"
// @Success     200  {object} createResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/datasets [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List datasets
// @Description Returns datasets newest first, without their tasks.
// @Tags        Datasets
// @Produce     json
// @Param       source query string false "Filter by source (api/demo/file/calendar)"
// @Param       limit  query int    false "Page size (default: 20, max: 100)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/datasets [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get dataset detail
// @Description Returns a dataset with its tasks in input order.
// @Tags        Datasets
// @Produce     json
// @Param       id path string true "Dataset ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/datasets/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// ImportCalendar godoc
// @Summary     Import a dataset from Google Calendar
// @Description Creates a dataset from the events of a calendar. Events are grouped by ISO week (sprint) and calendar (project).
// @Tags        Datasets
// @Accept      json
// @Produce     json
// @Param       body body importCalendarReq true "Import range"
// @Success     200  {object} createResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     503  {object} response.Resp "Calendar not configured"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/datasets/import/calendar [POST]
func (h *handler) ImportCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processImportCalendarReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ImportCalendar(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.ImportCalendar: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateResp(output))
}
