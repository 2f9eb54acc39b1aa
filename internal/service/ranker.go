package service

import (
	"context"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"ledgerdesk/internal/database/repository"
)

// Standing is one enterprise's merged placement across ranking sources.
type Standing struct {
	Enterprise string
	BestRank   int
	TotalScore float64
	Sources    int
}

// Ranker merges per-source ranking entries into one standings list. Entries
// whose enterprise names are near-duplicates are treated as the same
// enterprise: scores sum, the best rank wins.
type Ranker struct {
	Rankings *repository.RankingRepo
	// MaxDistance is the levenshtein threshold on normalized names; zero
	// means exact match only.
	MaxDistance int
}

func (r *Ranker) Standings(ctx context.Context) ([]Standing, error) {
	entries, err := r.Rankings.List(ctx)
	if err != nil {
		return nil, err
	}
	return Aggregate(entries, r.MaxDistance), nil
}

// Aggregate folds entries into standings, merging near-duplicate names.
func Aggregate(entries []repository.RankingEntry, maxDistance int) []Standing {
	type group struct {
		standing Standing
		norm     string
	}
	groups := make([]*group, 0, len(entries))
	for _, e := range entries {
		norm := normalizeName(e.Enterprise)
		if norm == "" {
			continue
		}
		var g *group
		for _, cand := range groups {
			if cand.norm == norm || levenshtein.ComputeDistance(cand.norm, norm) <= maxDistance {
				g = cand
				break
			}
		}
		if g == nil {
			g = &group{norm: norm, standing: Standing{Enterprise: e.Enterprise, BestRank: e.Rank}}
			groups = append(groups, g)
		}
		if e.Rank < g.standing.BestRank {
			g.standing.BestRank = e.Rank
		}
		g.standing.TotalScore += e.Score
		g.standing.Sources++
	}
	out := make([]Standing, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.standing)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalScore != out[j].TotalScore {
			return out[i].TotalScore > out[j].TotalScore
		}
		return out[i].BestRank < out[j].BestRank
	})
	return out
}

var corporateSuffixes = []string{"CO", "KK", "INC", "LTD", "CORP", "GMBH"}

// normalizeName uppercases, drops non-alphanumeric runes and trailing
// corporate suffixes so "Northwind Trading Co" merges with
// "Northwind Trading".
func normalizeName(name string) string {
	fields := strings.Fields(strings.ToUpper(name))
	for len(fields) > 1 {
		last := strings.Map(keepAlnum, fields[len(fields)-1])
		isSuffix := false
		for _, s := range corporateSuffixes {
			if last == s {
				isSuffix = true
				break
			}
		}
		if !isSuffix {
			break
		}
		fields = fields[:len(fields)-1]
	}
	return strings.Map(keepAlnum, strings.Join(fields, ""))
}

func keepAlnum(r rune) rune {
	if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
		return r
	}
	return -1
}
