package router

import (
	"context"
	"fmt"

	"customer-support/internal/conversation"
)

// Classify scores all responders and returns the winner.
// Responders at or below MinScore are ineligible unless they are always eligible.
// The highest score wins; scores within TieEpsilon go to the lower priority rank.
// When nothing is eligible every responder is considered, so the result is never empty.
func (r *ScoringRouter) Classify(ctx context.Context, msg conversation.Message, c conversation.Context) RouterOutput {
	scores := make([]conversation.ScoreEntry, len(r.responders))
	anyEligible := false
	for i, rs := range r.responders {
		d := rs.Descriptor()
		score := rs.Score(msg, c)
		eligible := d.AlwaysEligible || score > r.cfg.MinScore
		anyEligible = anyEligible || eligible
		scores[i] = conversation.ScoreEntry{
			ResponderID:  d.ID,
			PriorityRank: d.PriorityRank,
			Score:        score,
			Eligible:     eligible,
		}
	}

	best := -1
	tied := false
	for i, s := range scores {
		if anyEligible && !s.Eligible {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		diff := s.Score - scores[best].Score
		switch {
		case diff > TieEpsilon:
			best, tied = i, false
		case diff >= -TieEpsilon && s.PriorityRank < scores[best].PriorityRank:
			best, tied = i, true
		case diff >= -TieEpsilon:
			tied = true
		}
	}

	winner := scores[best]
	out := RouterOutput{
		Winner: r.responders[best],
		Scores: scores,
	}
	switch {
	case !anyEligible:
		out.Reasoning = fmt.Sprintf(ReasonNoEligible, r.cfg.MinScore, winner.ResponderID, winner.PriorityRank)
	case tied:
		out.Reasoning = fmt.Sprintf(ReasonTieBreak, winner.ResponderID, winner.Score, winner.PriorityRank)
	default:
		out.Reasoning = fmt.Sprintf(ReasonWinner, winner.ResponderID, winner.Score, winner.PriorityRank)
	}

	r.l.Debugf(ctx, "%s: %s", LogPrefixClassify, out.Reasoning)
	return out
}
