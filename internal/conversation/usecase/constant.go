package usecase

// Log prefixes
const (
	LogPrefixHandleTurn = "internal.conversation.usecase.HandleTurn"
	LogPrefixClear      = "internal.conversation.usecase.ClearConversation"
	LogPrefixHistory    = "internal.conversation.usecase.History"
)

// DefaultSessionID is used when a turn arrives without a session id.
const DefaultSessionID = "default"

// Failure reply
const (
	MsgServiceUnavailable      = "Sorry, our service is temporarily unavailable. Please try again."
	CategoryServiceUnavailable = "service_unavailable"
)

// escapePhrases drop a pending slot when they appear anywhere in the message.
var escapePhrases = []string{
	"never mind",
	"nevermind",
	"forget it",
	"cancel that",
	"no thanks",
}

// escapeMessages drop a pending slot only when they are the whole message.
var escapeMessages = []string{"cancel", "stop"}
