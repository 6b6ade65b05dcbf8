package http

import (
	"strings"

	"customer-support/internal/conversation"
	"customer-support/pkg/response"
)

// Run statuses of the compatibility endpoint.
const (
	runStatusSuccess = "success"
	runStatusError   = "error"
)

// --- Request DTOs ---

type chatReq struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

func (r *chatReq) validate() error {
	r.Message = strings.TrimSpace(r.Message)
	if r.Message == "" {
		return conversation.ErrEmptyMessage
	}
	r.SessionID = strings.TrimSpace(r.SessionID)
	return nil
}

// ---

type messageReq struct {
	Message string `json:"message"`
}

func (r *messageReq) validate() error {
	r.Message = strings.TrimSpace(r.Message)
	if r.Message == "" {
		return conversation.ErrEmptyMessage
	}
	return nil
}

// --- Response DTOs ---

type slotResp struct {
	Owner          string `json:"owner"`
	Name           string `json:"name"`
	PromptedAtTurn int    `json:"prompted_at_turn,omitempty"`
}

type chatResp struct {
	SessionID     string    `json:"session_id"`
	Reply         string    `json:"reply"`
	Suggestions   []string  `json:"suggestions,omitempty"`
	Agent         string    `json:"agent"`
	Category      string    `json:"category,omitempty"`
	Route         string    `json:"route"`
	TransactionID string    `json:"transaction_id,omitempty"`
	PendingSlot   *slotResp `json:"pending_slot,omitempty"`
}

func (h *handler) newChatResp(sessionID string, r conversation.Reply) chatResp {
	resp := chatResp{
		SessionID:     sessionID,
		Reply:         r.Text,
		Suggestions:   r.Suggestions,
		Agent:         string(r.RespondingAgentID),
		Category:      r.Category,
		Route:         string(r.Route),
		TransactionID: r.TransactionID,
	}
	if d := r.DeclaredPendingSlot; d != nil {
		resp.PendingSlot = &slotResp{Owner: string(d.Owner), Name: string(d.Name)}
	}
	return resp
}

// runResp is the flat body the original web frontend expects.
type runResp struct {
	Response string `json:"response"`
	Status   string `json:"status"`
}

func (h *handler) newRunResp(r conversation.Reply) runResp {
	status := runStatusSuccess
	if r.Route == conversation.RouteFailure {
		status = runStatusError
	}
	return runResp{Response: r.Text, Status: status}
}

type turnResp struct {
	Message string            `json:"message"`
	Reply   string            `json:"reply"`
	Agent   string            `json:"agent"`
	Route   string            `json:"route"`
	At      response.DateTime `json:"at"`
}

type sessionResp struct {
	SessionID     string            `json:"session_id"`
	TurnCount     int               `json:"turn_count"`
	LastResponder string            `json:"last_responder,omitempty"`
	PendingSlot   *slotResp         `json:"pending_slot,omitempty"`
	UpdatedAt     response.DateTime `json:"updated_at"`
	History       []turnResp        `json:"history"`
}

func (h *handler) newSessionResp(c conversation.Context) sessionResp {
	history := make([]turnResp, len(c.History))
	for i, t := range c.History {
		history[i] = turnResp{
			Message: t.Message.Text,
			Reply:   t.Reply.Text,
			Agent:   string(t.Reply.RespondingAgentID),
			Route:   string(t.Reply.Route),
			At:      response.DateTime(t.At),
		}
	}

	resp := sessionResp{
		SessionID:     c.SessionID,
		TurnCount:     c.TurnCount,
		LastResponder: string(c.LastResponderID),
		UpdatedAt:     response.DateTime(c.UpdatedAt),
		History:       history,
	}
	if s := c.PendingSlot; s != nil {
		resp.PendingSlot = &slotResp{Owner: string(s.Owner), Name: string(s.Name), PromptedAtTurn: s.PromptedAtTurn}
	}
	return resp
}

type scoreResp struct {
	Agent    string  `json:"agent"`
	Rank     int     `json:"rank"`
	Score    float64 `json:"score"`
	Eligible bool    `json:"eligible"`
}

type routeResp struct {
	Tokens    []string            `json:"tokens"`
	Entities  map[string][]string `json:"entities"`
	Scores    []scoreResp         `json:"scores"`
	Winner    string              `json:"winner"`
	Reasoning string              `json:"reasoning"`
}

func (h *handler) newRouteResp(out conversation.ExplainOutput) routeResp {
	entities := make(map[string][]string, len(out.Message.Entities))
	for k, v := range out.Message.Entities {
		entities[string(k)] = v
	}

	scores := make([]scoreResp, len(out.Scores))
	for i, s := range out.Scores {
		scores[i] = scoreResp{
			Agent:    string(s.ResponderID),
			Rank:     s.PriorityRank,
			Score:    s.Score,
			Eligible: s.Eligible,
		}
	}

	return routeResp{
		Tokens:    out.Message.Tokens,
		Entities:  entities,
		Scores:    scores,
		Winner:    string(out.Winner),
		Reasoning: out.Reasoning,
	}
}
