package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-support/config"
	"customer-support/internal/conversation"
	"customer-support/pkg/log"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Conversation:   config.ConversationConfig{MaxHistory: 10, MaxSessions: 100, SessionTTL: time.Minute},
		Routing:        config.RoutingConfig{MinScore: 0.1},
		Refund:         config.RefundConfig{WindowDays: 30, ProcessingFee: 2.99, FeeThreshold: 50},
		TransactionLog: config.TransactionLogConfig{DSN: "file:" + filepath.Join(t.TempDir(), "tx.db")},
	}
}

func TestBuild_RoutesSeededOrder(t *testing.T) {
	ctx := context.Background()
	a, err := Build(ctx, testConfig(t), log.NewNop())
	require.NoError(t, err)
	defer a.Close()

	reply := a.UseCase.HandleTurn(ctx, "s1", "where is my order 11111")
	assert.Equal(t, conversation.ResponderOrder, reply.RespondingAgentID)
	assert.Contains(t, reply.Text, "11111")
}

func TestBuild_BadKnowledgePath(t *testing.T) {
	cfg := testConfig(t)
	cfg.Knowledge.Path = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := Build(context.Background(), cfg, log.NewNop())
	assert.Error(t, err)
}
