// Package app assembles the conversation stack from configuration. Both the
// HTTP server and the CLI build their usecase through it.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"customer-support/config"
	"customer-support/internal/commerce"
	"customer-support/internal/commerce/repository/memory"
	"customer-support/internal/commerce/repository/sqlite"
	"customer-support/internal/conversation"
	"customer-support/internal/conversation/session"
	"customer-support/internal/conversation/usecase"
	"customer-support/internal/knowledge"
	"customer-support/internal/responder"
	"customer-support/internal/router"
	"customer-support/pkg/log"
)

// App is the assembled conversation stack.
type App struct {
	UseCase conversation.UseCase
	db      *sql.DB
}

// Close releases the transaction log database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Build wires repositories, responders, the session store and the coordinator.
func Build(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	now := time.Now

	// 1. Transaction log
	db, err := sqlite.Open(ctx, cfg.TransactionLog.DSN)
	if err != nil {
		return nil, fmt.Errorf("open transaction log: %w", err)
	}
	txlog := sqlite.New(db, l, now)

	// 2. Knowledge base
	kb, err := knowledge.Load(cfg.Knowledge.Path)
	if err != nil {
		db.Close()
		return nil, err
	}

	// 3. Commerce data and refund policy
	orders := memory.New(l, now)
	policy := commerce.NewPolicy(commerce.PolicyConfig{
		WindowDays:    cfg.Refund.WindowDays,
		ProcessingFee: cfg.Refund.ProcessingFee,
		FeeThreshold:  cfg.Refund.FeeThreshold,
	}, now)

	// 4. Responders, in priority order
	responders := []responder.Responder{
		responder.NewRefund(orders, policy, txlog, responder.RefundConfig{
			WindowDays:    cfg.Refund.WindowDays,
			ProcessingFee: cfg.Refund.ProcessingFee,
			FeeThreshold:  cfg.Refund.FeeThreshold,
		}, l),
		responder.NewOrder(orders, l),
		responder.NewSupport(kb, l),
		responder.NewFallback(l),
	}

	// 5. Sessions and coordinator
	store := session.New(session.Config{
		MaxHistory:  cfg.Conversation.MaxHistory,
		MaxSessions: cfg.Conversation.MaxSessions,
		TTL:         cfg.Conversation.SessionTTL,
	})
	uc := usecase.New(l, store, responders, router.Config{MinScore: cfg.Routing.MinScore})

	l.Infof(ctx, "app.Build: %d responders, transaction log %s", len(responders), cfg.TransactionLog.DSN)

	return &App{UseCase: uc, db: db}, nil
}
