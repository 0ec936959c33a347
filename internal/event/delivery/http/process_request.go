package http

import (
	"github.com/gin-gonic/gin"

	"household-calendar/internal/event"
)

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

func (h *handler) processBatchCreateReq(c *gin.Context) (batchCreateReq, error) {
	var req batchCreateReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

func (h *handler) processListReq(c *gin.Context) (event.ListInput, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return event.ListInput{}, err
	}
	return req.toInput()
}

func (h *handler) processDeleteByRecurrenceReq(c *gin.Context) (event.DeleteByRecurrenceInput, error) {
	var req deleteByRecurrenceReq
	if err := c.ShouldBindUri(&req); err != nil {
		return event.DeleteByRecurrenceInput{}, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return event.DeleteByRecurrenceInput{}, err
	}
	return req.toInput()
}
