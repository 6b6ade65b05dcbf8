package httpserver

import (
	"context"

	"customer-support/internal/middleware"

	conversationHTTP "customer-support/internal/conversation/delivery/http"
)

// setupConversationDomain registers the chat API under /api/v1 and the legacy
// endpoint under /api. The usecase is built by the caller.
func (srv HTTPServer) setupConversationDomain(ctx context.Context, mw middleware.Middleware) error {
	h := conversationHTTP.New(srv.l, srv.conversationUC)

	conversationHTTP.RegisterRoutes(srv.gin.Group("/api/v1"), h, mw)
	conversationHTTP.RegisterCompatRoutes(srv.gin.Group("/api"), h, mw)

	srv.l.Infof(ctx, "Conversation domain registered")
	return nil
}
