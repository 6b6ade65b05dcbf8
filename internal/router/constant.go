package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Router configuration
const (
	DefaultMinScore = 0.1
	TieEpsilon      = 1e-9
)

// Reasoning templates
const (
	ReasonWinner     = "%s scored %.3f (rank %d)"
	ReasonTieBreak   = "%s won a tie at %.3f on priority rank %d"
	ReasonNoEligible = "no responder scored above %.2f; chose %s on priority rank %d"
)
