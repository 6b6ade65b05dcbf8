package http

import (
	"customer-support/internal/conversation"
	"customer-support/pkg/log"
)

type handler struct {
	l  log.Logger
	uc conversation.UseCase
}

// New creates the HTTP handler for the conversation domain.
func New(l log.Logger, uc conversation.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
