package usecase

import (
	"customer-support/internal/conversation"
	"customer-support/internal/responder"
	"customer-support/internal/router"
	pkgLog "customer-support/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	store  conversation.ContextStore
	router router.Router
}

var _ conversation.UseCase = (*implUseCase)(nil)

// New creates the conversation coordinator. responders is the full set the
// router scores; slot owners are resolved through the same router.
func New(
	l pkgLog.Logger,
	store conversation.ContextStore,
	responders []responder.Responder,
	routerCfg router.Config,
) *implUseCase {
	return &implUseCase{
		l:      l,
		store:  store,
		router: router.New(responders, routerCfg, l),
	}
}
