package consensus

import (
	"sort"
	"strconv"

	"github.com/ironsheep/rankboard-ocr/internal/leaderboard"
)

// group collects the partial rows that share a ranking key.
type group struct {
	key      string
	partials []leaderboard.PartialRow
}

// Build reconciles partial rows from many frames into one row per ranking key.
//
// Rows are grouped by exact key equality and emitted in order of each key's
// first appearance. Every field takes the accepted value seen most often in
// its group; a tie goes to the value that appeared first. A field with no
// accepted reading stays nil and marks the row incomplete.
func Build(partials []leaderboard.PartialRow) []leaderboard.Row {
	var groups []*group
	byKey := make(map[string]*group)
	for _, p := range partials {
		g, ok := byKey[p.RankingKey]
		if !ok {
			g = &group{key: p.RankingKey}
			byKey[p.RankingKey] = g
			groups = append(groups, g)
		}
		g.partials = append(g.partials, p)
	}

	rows := make([]leaderboard.Row, 0, len(groups))
	for _, g := range groups {
		row := leaderboard.Row{RankingKey: g.key, Complete: true, Observations: len(g.partials)}
		for _, f := range leaderboard.Fields {
			winner := Vote(accepted(g.partials, f))
			row.Set(f, winner)
			if winner == nil {
				row.Complete = false
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Vote returns the most frequent value, preferring the earliest on ties.
// It returns nil when values is empty.
func Vote(values []string) *string {
	if len(values) == 0 {
		return nil
	}

	counts := make(map[string]int, len(values))
	var order []string
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	best := order[0]
	for _, v := range order[1:] {
		if counts[v] > counts[best] {
			best = v
		}
	}
	return &best
}

// accepted returns the accepted values of field f in input order.
func accepted(partials []leaderboard.PartialRow, f leaderboard.Field) []string {
	var values []string
	for _, p := range partials {
		if r := p.Get(f); !r.IsNull() {
			values = append(values, r.Value)
		}
	}
	return values
}

// Incomplete returns the keys of rows missing at least one field, in row order.
func Incomplete(rows []leaderboard.Row) []string {
	var keys []string
	for _, r := range rows {
		if !r.Complete {
			keys = append(keys, r.RankingKey)
		}
	}
	return keys
}

// SortByRank orders rows by numeric ranking. Keys that are not integers sort
// after all numeric keys, in lexicographic order. The sort is stable.
func SortByRank(rows []leaderboard.Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, aErr := strconv.Atoi(rows[i].RankingKey)
		b, bErr := strconv.Atoi(rows[j].RankingKey)
		switch {
		case aErr == nil && bErr == nil:
			return a < b
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		default:
			return rows[i].RankingKey < rows[j].RankingKey
		}
	})
}
