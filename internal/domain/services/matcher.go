package services

import (
	"sort"
	"strconv"
	"strings"
)

type Matchable interface {
	MatchNumber() int
	MatchTitle() string
}

const (
	numberPrefixScore   = 1.0
	titleSubstringScore = numberPrefixScore - 0.1
)

// MatchScore ranks an item against text: a number prefix match beats a
// case-insensitive title substring match, anything else scores zero.
func MatchScore(item Matchable, text string) float64 {
	if strings.HasPrefix(strconv.Itoa(item.MatchNumber()), text) {
		return numberPrefixScore
	}
	if strings.Contains(strings.ToLower(item.MatchTitle()), strings.ToLower(text)) {
		return titleSubstringScore
	}
	return 0
}

// FindMatching returns the items matching text, best score first. Items with
// equal scores keep ascending number order. Empty text returns every item
// ordered by number.
func FindMatching[T Matchable](items []T, text string) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MatchNumber() < sorted[j].MatchNumber()
	})
	if text == "" {
		return sorted
	}

	scores := make(map[int]float64, len(sorted))
	out := make([]T, 0, len(sorted))
	for _, item := range sorted {
		s := MatchScore(item, text)
		if s <= 0 {
			continue
		}
		scores[item.MatchNumber()] = s
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return scores[out[i].MatchNumber()] > scores[out[j].MatchNumber()]
	})
	return out
}
