package usecase

import (
	"strings"

	"github.com/ecoscore/backend/internal/domain"
)

// MatchMaterials returns the catalog entries whose key or any alias occurs as
// a case-insensitive substring of the input text. Entries are checked in
// catalog order and each entry matches at most once, even when several of its
// aliases occur. Empty input or no matches yields an empty result, not an
// error.
func MatchMaterials(text string, entries []domain.MaterialEntry) []domain.MatchResult {
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)

	var matches []domain.MatchResult
	for _, entry := range entries {
		var hit []string
		for _, term := range matchTerms(entry) {
			if term != "" && strings.Contains(lower, strings.ToLower(term)) {
				hit = append(hit, term)
			}
		}
		if len(hit) > 0 {
			matches = append(matches, domain.MatchResult{
				Entry:          entry,
				MatchedAliases: hit,
			})
		}
	}

	return matches
}

// matchTerms returns the searchable terms for an entry: the canonical key
// followed by its aliases.
func matchTerms(entry domain.MaterialEntry) []string {
	terms := make([]string, 0, len(entry.Aliases)+1)
	terms = append(terms, entry.Key)
	terms = append(terms, entry.Aliases...)
	return terms
}
