package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

// processChatReq binds the chat body and assigns a fresh session id when none is given.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		return req, errInvalidBody
	}
	if err := req.validate(); err != nil {
		return req, err
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}
	return req, nil
}

// processMessageReq binds a body that carries only a message.
func (h *handler) processMessageReq(c *gin.Context) (messageReq, error) {
	var req messageReq
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		return req, errInvalidBody
	}
	return req, req.validate()
}
