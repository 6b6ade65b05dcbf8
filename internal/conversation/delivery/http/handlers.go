package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"customer-support/pkg/response"
)

// CompatSessionID is the session used by the single-user compatibility endpoint.
const CompatSessionID = "default"

// Chat godoc
// @Summary     Send a chat message
// @Description Routes one customer message and returns the reply. A new session id is issued when none is sent.
// @Tags        Conversation
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	reply := h.uc.HandleTurn(ctx, req.SessionID, req.Message)
	response.OK(c, h.newChatResp(req.SessionID, reply))
}

// Run godoc
// @Summary     Send a message (legacy)
// @Description Single-session endpoint kept for the original web frontend. Responds with a flat body.
// @Tags        Conversation
// @Accept      json
// @Produce     json
// @Param       body body messageReq true "Message"
// @Success     200  {object} runResp
// @Failure     400  {object} runResp
// @Router      /api/run [POST]
func (h *handler) Run(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMessageReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, runResp{Response: err.Error(), Status: runStatusError})
		return
	}

	reply := h.uc.HandleTurn(ctx, CompatSessionID, req.Message)
	c.JSON(http.StatusOK, h.newRunResp(reply))
}

// GetSession godoc
// @Summary     Get a conversation
// @Description Returns the bounded history, last responder and pending slot of a session.
// @Tags        Conversation
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id} [GET]
func (h *handler) GetSession(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.History(ctx, c.Param("id"))
	if err != nil {
		h.l.Debugf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionResp(out))
}

// ClearSession godoc
// @Summary     Clear a conversation
// @Description Drops the history and any pending slot of a session.
// @Tags        Conversation
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id} [DELETE]
func (h *handler) ClearSession(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.ClearConversation(ctx, c.Param("id")); err != nil {
		h.l.Debugf(ctx, "uc.ClearConversation: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Route godoc
// @Summary     Explain routing
// @Description Scores a message against every responder without touching any session.
// @Tags        Conversation
// @Accept      json
// @Produce     json
// @Param       body body messageReq true "Message"
// @Success     200  {object} routeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/route [POST]
func (h *handler) Route(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMessageReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRouteResp(h.uc.Explain(ctx, req.Message)))
}
