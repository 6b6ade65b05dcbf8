package normalizer

import (
	"strings"
	"unicode"

	"customer-support/internal/conversation"
)

// Order ids are 4-6 digit numbers.
const (
	OrderIDMinDigits = 4
	OrderIDMaxDigits = 6
)

// extractor pulls values of one entity kind out of the token stream.
type extractor struct {
	kind  conversation.EntityKind
	match func(token string) bool
}

var extractors = []extractor{
	{kind: conversation.EntityOrderID, match: isOrderID},
}

// Normalize lowercases and tokenizes raw text and extracts entities.
// It never fails; text without entities yields an empty entity map.
func Normalize(raw string) conversation.Message {
	tokens := Tokenize(raw)

	entities := make(map[conversation.EntityKind][]string)
	for _, ex := range extractors {
		seen := make(map[string]bool)
		for _, tok := range tokens {
			if !ex.match(tok) || seen[tok] {
				continue
			}
			seen[tok] = true
			entities[ex.kind] = append(entities[ex.kind], tok)
		}
	}

	return conversation.Message{
		Text:     raw,
		Tokens:   tokens,
		Entities: entities,
	}
}

// Tokenize lowercases text and splits it on every rune that is not a letter or digit.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func isOrderID(token string) bool {
	if len(token) < OrderIDMinDigits || len(token) > OrderIDMaxDigits {
		return false
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return false
		}
	}
	return true
}
