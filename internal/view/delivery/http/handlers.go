package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"production-board/internal/model"
	"production-board/internal/view"
	"production-board/pkg/response"
)

// Schedule godoc
// @Summary     Build a shooting schedule
// @Description Groups shots by date, derives the sorted date axis and summarizes progress.
// @Tags        Views
// @Accept      json
// @Produce     json
// @Param       body body scheduleReq true "Shots as an array or paginated envelope"
// @Success     200  {object} scheduleResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/views/schedule [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Schedule(ctx, req.toInput())
	if err != nil {
		h.fail(ctx, c, "uc.Schedule", err)
		return
	}

	response.OK(c, h.newScheduleResp(output))
}

// List godoc
// @Summary     Filter and sort a collection
// @Description Applies search, category, status, priority and due filters, then sorts.
// @Tags        Views
// @Accept      json
// @Produce     json
// @Param       kind path string  true "Collection kind" Enums(shots, tasks, notes)
// @Param       body body listDoc true "Items plus filter state changes"
// @Success     200  {object} listResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Unknown kind"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/views/list/{kind} [POST]
func (h *handler) List(c *gin.Context) {
	kind, err := h.processKind(c)
	if err != nil {
		h.fail(c.Request.Context(), c, "processKind", err)
		return
	}

	switch kind {
	case view.KindShots:
		serveList(h, c, h.uc.ListShots)
	case view.KindTasks:
		serveList(h, c, h.uc.ListTasks)
	case view.KindNotes:
		serveList(h, c, h.uc.ListNotes)
	}
}

func serveList[T model.Entity](
	h *handler,
	c *gin.Context,
	run func(context.Context, view.ListInput[T]) (view.ListOutput[T], error),
) {
	ctx := c.Request.Context()

	req, err := processListReq[T](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := run(ctx, req.toInput())
	if err != nil {
		h.fail(ctx, c, "uc.List", err)
		return
	}

	response.OK(c, newListResp(output))
}

// State godoc
// @Summary     Default filter state
// @Description Returns the unfiltered state and default sort for a collection kind.
// @Tags        Views
// @Produce     json
// @Param       kind path string true "Collection kind" Enums(shots, tasks, notes)
// @Success     200  {object} stateResp
// @Failure     404  {object} response.Resp "Unknown kind"
// @Router      /api/v1/views/state/{kind} [GET]
func (h *handler) State(c *gin.Context) {
	ctx := c.Request.Context()

	kind, err := h.processKind(c)
	if err != nil {
		h.fail(ctx, c, "processKind", err)
		return
	}

	state, err := h.uc.DefaultState(ctx, kind)
	if err != nil {
		h.fail(ctx, c, "uc.DefaultState", err)
		return
	}

	response.OK(c, h.newStateResp(kind, state))
}

// fail logs err and writes the mapped response. Errors mapError does not
// know are reported as internal errors.
func (h *handler) fail(ctx context.Context, c *gin.Context, op string, err error) {
	if httpErr := h.mapError(err); httpErr != nil {
		h.l.Warnf(ctx, "%s: %v", op, err)
		response.Error(c, httpErr)
		return
	}
	h.l.Errorf(ctx, "%s: %v", op, err)
	response.InternalError(c, err)
}
