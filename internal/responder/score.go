package responder

import (
	"sort"

	"customer-support/internal/conversation"
	"customer-support/internal/conversation/normalizer"
)

// ScoreSaturation is the keyword weight sum that maps to a full score of 1.
const ScoreSaturation = 4.0

// Score computes a keyword-and-entity score in [0, 1] for d.
func Score(d Descriptor, msg conversation.Message) float64 {
	s := KeywordScore(msg.Tokens, d.KeywordWeights) / ScoreSaturation
	if d.RequiredEntity != "" && msg.HasEntity(d.RequiredEntity) {
		s += d.EntityBonus
	}
	return clamp(s)
}

// KeywordScore sums the weight of every keyword whose tokens occur contiguously in tokens.
// Each keyword counts once. Keys are visited in sorted order so the sum is reproducible.
func KeywordScore(tokens []string, weights map[string]float64) float64 {
	keys := make([]string, 0, len(weights))
	for k := range weights {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sum := 0.0
	for _, k := range keys {
		if ContainsPhrase(tokens, k) {
			sum += weights[k]
		}
	}
	return sum
}

// ContainsPhrase reports whether the tokens of phrase appear contiguously in tokens.
func ContainsPhrase(tokens []string, phrase string) bool {
	want := normalizer.Tokenize(phrase)
	if len(want) == 0 || len(want) > len(tokens) {
		return false
	}
	for i := 0; i+len(want) <= len(tokens); i++ {
		match := true
		for j, w := range want {
			if tokens[i+j] != w {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// ContainsAny reports whether any phrase occurs in tokens.
func ContainsAny(tokens []string, phrases ...string) bool {
	for _, p := range phrases {
		if ContainsPhrase(tokens, p) {
			return true
		}
	}
	return false
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
