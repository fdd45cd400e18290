package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"production-board/internal/model"
	"production-board/internal/view"
)

// processScheduleReq binds the schedule request body.
func (h *handler) processScheduleReq(c *gin.Context) (scheduleReq, error) {
	var req scheduleReq
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		return req, err
	}
	req.key = requestKey(c)
	return req, nil
}

// processListReq binds the list request body for one collection kind.
func processListReq[T model.Entity](c *gin.Context) (listReq[T], error) {
	var req listReq[T]
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		return req, err
	}
	req.key = requestKey(c)
	return req, nil
}

// processKind validates the :kind URI param.
func (h *handler) processKind(c *gin.Context) (view.Kind, error) {
	return view.ParseKind(c.Param("kind"))
}

// requestKey hashes the body cached by ShouldBindBodyWith.
func requestKey(c *gin.Context) string {
	raw, ok := c.Get(gin.BodyBytesKey)
	if !ok {
		return ""
	}
	body, _ := raw.([]byte)
	return bodyKey(body)
}
