package http

import (
	"github.com/gin-gonic/gin"

	"household-calendar/internal/middleware"
	"household-calendar/pkg/response"
)

// Chat godoc
// @Summary     Extract events from a chat message
// @Description Turns a natural-language message into a single event proposal, a weekly batch, or a plain reply. Nothing is persisted.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       X-Workspace-ID header string  true  "Workspace ID"
// @Param       X-User-ID      header string  false "User ID"
// @Param       body           body   chatReq true  "Chat message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Missing workspace"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.l.Warnf(ctx, "http.Chat processChatReq: %v", err)
		response.Error(c, err)
		return
	}

	sc, _ := middleware.GetScopeFromContext(ctx)
	out := h.uc.Extract(ctx, sc, req.toInput())
	response.OK(c, h.newChatResp(out))
}
