package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"household-calendar/internal/middleware"
	"household-calendar/pkg/response"
)

// Create godoc
// @Summary     Store a confirmed event
// @Description Persists one proposal returned by the chat endpoint.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       X-Workspace-ID header string    true  "Workspace ID"
// @Param       X-User-ID      header string    false "User ID"
// @Param       body           body   createReq true  "Confirmed proposal"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Missing workspace"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sc, _ := middleware.GetScopeFromContext(ctx)
	ev, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "http.Create uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, createResp{Event: newEventResp(ev)})
}

// BatchCreate godoc
// @Summary     Store a confirmed batch
// @Description Persists every proposal of a recurring batch. Elements are stored independently; rejected ones are listed in failed.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       X-Workspace-ID header string         true  "Workspace ID"
// @Param       X-User-ID      header string         false "User ID"
// @Param       body           body   batchCreateReq true  "Confirmed batch"
// @Success     200 {object} batchCreateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Missing workspace"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/batch [POST]
func (h *handler) BatchCreate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBatchCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sc, _ := middleware.GetScopeFromContext(ctx)
	out, err := h.uc.BatchCreate(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "http.BatchCreate uc.BatchCreate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newBatchCreateResp(out))
}

// List godoc
// @Summary     List events
// @Description Returns the workspace's events overlapping [from, to). Either bound may be omitted.
// @Tags        Events
// @Produce     json
// @Param       X-Workspace-ID header string true  "Workspace ID"
// @Param       from           query  string false "RFC 3339 lower bound"
// @Param       to             query  string false "RFC 3339 upper bound"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Missing workspace"
// @Router      /api/v1/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sc, _ := middleware.GetScopeFromContext(ctx)
	events, err := h.uc.List(ctx, sc, input)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(events))
}

// Delete godoc
// @Summary     Delete an event
// @Tags        Events
// @Produce     json
// @Param       X-Workspace-ID header string true "Workspace ID"
// @Param       id             path   string true "Event ID"
// @Success     200 {object} deleteResp
// @Failure     401 {object} response.Resp "Missing workspace"
// @Failure     403 {object} response.Resp "Event of another workspace"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/events/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, _ := middleware.GetScopeFromContext(ctx)
	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, deleteResp{Deleted: 1})
}

// DeleteByRecurrence godoc
// @Summary     Delete a recurring batch
// @Description Removes the batch's events starting at or after from. Without from the whole batch is removed.
// @Tags        Events
// @Produce     json
// @Param       X-Workspace-ID header string true  "Workspace ID"
// @Param       recurrenceId   path   string true  "Recurrence ID"
// @Param       from           query  string false "RFC 3339 lower bound"
// @Success     200 {object} deleteResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Missing workspace"
// @Router      /api/v1/events/recurrence/{recurrenceId} [DELETE]
func (h *handler) DeleteByRecurrence(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processDeleteByRecurrenceReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sc, _ := middleware.GetScopeFromContext(ctx)
	n, err := h.uc.DeleteByRecurrence(ctx, sc, input)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, deleteResp{Deleted: n})
}

// ExportICS godoc
// @Summary     Export events as iCalendar
// @Tags        Events
// @Produce     text/calendar
// @Param       X-Workspace-ID header string true  "Workspace ID"
// @Param       from           query  string false "RFC 3339 lower bound"
// @Param       to             query  string false "RFC 3339 upper bound"
// @Success     200 {string} string "text/calendar document"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/events/export.ics [GET]
func (h *handler) ExportICS(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sc, _ := middleware.GetScopeFromContext(ctx)
	body, err := h.uc.ExportICS(ctx, sc, input)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, exportFileName))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", body)
}
