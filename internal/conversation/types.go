package conversation

import "time"

// ResponderID identifies a responder variant.
type ResponderID string

const (
	ResponderRefund   ResponderID = "RefundAgent"
	ResponderOrder    ResponderID = "OrderAgent"
	ResponderSupport  ResponderID = "GeneralSupportAgent"
	ResponderFallback ResponderID = "FallbackAgent"

	// ResponderCoordinator marks replies produced by the coordinator itself (failures).
	ResponderCoordinator ResponderID = "Coordinator"
)

// EntityKind names a structured value extracted from message text.
type EntityKind string

const (
	EntityOrderID EntityKind = "order_id"
)

// SlotName names the single piece of information a responder is waiting for.
type SlotName string

const (
	SlotOrderID SlotName = SlotName(EntityOrderID)
)

// RouteReason records how the coordinator picked the responder for a turn.
type RouteReason string

const (
	RoutePendingSlot RouteReason = "pending_slot"
	RouteScoring     RouteReason = "scoring"
	RouteFailure     RouteReason = "failure"
)

// --- Message ---

// Message is one normalized inbound turn. It is never mutated after Normalize.
type Message struct {
	Text     string
	Tokens   []string
	Entities map[EntityKind][]string
}

// Entity returns the first extracted value of the given kind.
func (m Message) Entity(kind EntityKind) (string, bool) {
	vals := m.Entities[kind]
	if len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// HasEntity reports whether at least one value of kind was extracted.
func (m Message) HasEntity(kind EntityKind) bool {
	_, ok := m.Entity(kind)
	return ok
}

// --- Reply ---

// SlotDeclaration is what a responder asks the coordinator to keep open.
type SlotDeclaration struct {
	Owner ResponderID
	Name  SlotName
}

// Reply is the output of one turn.
type Reply struct {
	Text                string
	Suggestions         []string
	DeclaredPendingSlot *SlotDeclaration
	RespondingAgentID   ResponderID
	Category            string
	TransactionID       string
	Route               RouteReason
}

// --- Context ---

// PendingSlot is the open slot of a session.
type PendingSlot struct {
	Owner          ResponderID
	Name           SlotName
	PromptedAtTurn int
}

// Turn is one committed message/reply pair.
type Turn struct {
	Message Message
	Reply   Reply
	At      time.Time
}

// Context is the per-session conversation state.
// Only the coordinator changes it, through a Lease.
type Context struct {
	SessionID       string
	History         []Turn
	LastResponderID ResponderID
	PendingSlot     *PendingSlot
	TurnCount       int
	UpdatedAt       time.Time
}

// Clone returns a deep copy safe to hand to responders.
func (c Context) Clone() Context {
	out := c
	if c.History != nil {
		out.History = make([]Turn, len(c.History))
		copy(out.History, c.History)
	}
	if c.PendingSlot != nil {
		slot := *c.PendingSlot
		out.PendingSlot = &slot
	}
	return out
}

// LastTurn returns the most recent committed turn.
func (c Context) LastTurn() (Turn, bool) {
	if len(c.History) == 0 {
		return Turn{}, false
	}
	return c.History[len(c.History)-1], true
}

// --- Explain ---

// ScoreEntry is one row of a routing score table.
type ScoreEntry struct {
	ResponderID  ResponderID
	PriorityRank int
	Score        float64
	Eligible     bool
}

// ExplainOutput shows how a message would be routed with no pending slot.
type ExplainOutput struct {
	Message   Message
	Scores    []ScoreEntry
	Winner    ResponderID
	Reasoning string
}
