package consensus

import (
	"math"
	"reflect"
	"testing"

	"github.com/ironsheep/rankboard-ocr/internal/leaderboard"
)

func full(key, nick, points, wl, pct, rating string) leaderboard.PartialRow {
	return leaderboard.PartialRow{
		RankingKey: key,
		Nickname:   leaderboard.Accept(nick),
		Points:     leaderboard.Accept(points),
		WinsLosses: leaderboard.Accept(wl),
		WinPercent: leaderboard.Accept(pct),
		Rating:     leaderboard.Accept(rating),
	}
}

func strPtr(s string) *string { return &s }

func deref(p *string) string {
	if p == nil {
		return "<nil>"
	}
	return *p
}

func TestVote(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   *string
	}{
		{"empty", nil, nil},
		{"single", []string{"a"}, strPtr("a")},
		{"majority", []string{"120", "120", "125"}, strPtr("120")},
		{"majority not first", []string{"125", "120", "120"}, strPtr("120")},
		{"tie first appearance", []string{"b", "a", "a", "b"}, strPtr("b")},
		{"three way tie", []string{"x", "y", "z"}, strPtr("x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Vote(tt.values)
			if (got == nil) != (tt.want == nil) || (got != nil && *got != *tt.want) {
				t.Errorf("Vote(%v): got %s, want %s", tt.values, deref(got), deref(tt.want))
			}
		})
	}
}

func TestBuild_PluralityPerField(t *testing.T) {
	partials := []leaderboard.PartialRow{
		full("4", "Mario", "120", "10-2", "83%", "2100"),
		full("4", "Mario", "120", "10-2", "83%", "2100"),
		full("4", "Maria", "125", "10-2", "83%", "2100"),
	}

	rows := Build(partials)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	row := rows[0]
	if deref(row.Points) != "120" || deref(row.Nickname) != "Mario" {
		t.Errorf("unexpected winners: points=%s nickname=%s", deref(row.Points), deref(row.Nickname))
	}
	if !row.Complete || row.Observations != 3 {
		t.Errorf("complete=%v observations=%d", row.Complete, row.Observations)
	}
}

func TestBuild_AllNullFieldIsIncomplete(t *testing.T) {
	p := full("7", "Toad", "50", "1-9", "", "900")
	p.WinPercent = leaderboard.Reject("10%%")
	q := full("7", "Toad", "50", "1-9", "", "900")
	q.WinPercent = leaderboard.Reading{}

	rows := Build([]leaderboard.PartialRow{p, q})
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].WinPercent != nil {
		t.Errorf("win percent: got %s, want nil", deref(rows[0].WinPercent))
	}
	if rows[0].Complete {
		t.Error("row with a missing field must be incomplete")
	}
	if got := rows[0].MissingFields(); !reflect.DeepEqual(got, []leaderboard.Field{leaderboard.FieldWinPercent}) {
		t.Errorf("missing fields: got %v", got)
	}
	if got := Incomplete(rows); !reflect.DeepEqual(got, []string{"7"}) {
		t.Errorf("Incomplete: got %v, want [7]", got)
	}
}

func TestBuild_RejectedValuesDoNotVote(t *testing.T) {
	a := full("2", "Peach", "900", "9-1", "90%", "2000")
	b := full("2", "Peach", "900", "9-1", "90%", "2000")
	b.Points = leaderboard.Reject(",900")
	c := full("2", "Peach", "900", "9-1", "90%", "2000")
	c.Points = leaderboard.Reject(",900")

	rows := Build([]leaderboard.PartialRow{a, b, c})
	if deref(rows[0].Points) != "900" {
		t.Errorf("points: got %s, want 900", deref(rows[0].Points))
	}
}

func TestBuild_MergesPartialObservations(t *testing.T) {
	a := leaderboard.PartialRow{RankingKey: "4", Nickname: leaderboard.Accept("X")}
	b := leaderboard.PartialRow{RankingKey: "4", Points: leaderboard.Accept("Y")}

	rows := Build([]leaderboard.PartialRow{a, b})
	if deref(rows[0].Nickname) != "X" || deref(rows[0].Points) != "Y" {
		t.Errorf("fields not merged: %+v", rows[0])
	}
	if rows[0].Complete {
		t.Error("row still lacks three fields")
	}
}

func TestBuild_FirstAppearanceOrderAndExactKeys(t *testing.T) {
	partials := []leaderboard.PartialRow{
		full("10", "J", "1", "1-1", "50%", "1"),
		full("2", "B", "1", "1-1", "50%", "1"),
		full("02", "B", "1", "1-1", "50%", "1"),
		full("10", "J", "1", "1-1", "50%", "1"),
	}

	rows := Build(partials)
	var keys []string
	for _, r := range rows {
		keys = append(keys, r.RankingKey)
	}
	if !reflect.DeepEqual(keys, []string{"10", "2", "02"}) {
		t.Errorf("keys: got %v, want [10 2 02]", keys)
	}
}

func TestBuild_Properties(t *testing.T) {
	partials := []leaderboard.PartialRow{
		full("1", "A", "10", "1-0", "100%", "5"),
		full("3", "C", "30", "3-0", "100%", "7"),
		full("1", "A", "11", "1-0", "100%", "5"),
		{RankingKey: "5"},
		full("3", "C", "30", "3-0", "100%", "7"),
	}

	rows := Build(partials)

	keys := map[string]bool{}
	for _, r := range rows {
		if keys[r.RankingKey] {
			t.Errorf("duplicate key %s", r.RankingKey)
		}
		keys[r.RankingKey] = true
		for _, f := range leaderboard.Fields {
			v := r.Get(f)
			if v == nil {
				continue
			}
			found := false
			for _, p := range partials {
				if p.RankingKey == r.RankingKey && !p.Get(f).IsNull() && p.Get(f).Value == *v {
					found = true
				}
			}
			if !found {
				t.Errorf("key %s field %s: value %q was never observed", r.RankingKey, f, *v)
			}
		}
	}
	if len(keys) != 3 {
		t.Errorf("got %d distinct keys, want 3", len(keys))
	}
}

func TestBuild_Empty(t *testing.T) {
	if rows := Build(nil); len(rows) != 0 {
		t.Errorf("got %d rows from no input", len(rows))
	}
}

func TestSortByRank(t *testing.T) {
	rows := []leaderboard.Row{
		{RankingKey: "10"}, {RankingKey: "b"}, {RankingKey: "2"}, {RankingKey: "a"}, {RankingKey: "1"},
	}
	SortByRank(rows)

	var keys []string
	for _, r := range rows {
		keys = append(keys, r.RankingKey)
	}
	if !reflect.DeepEqual(keys, []string{"1", "2", "10", "a", "b"}) {
		t.Errorf("order: got %v", keys)
	}
}

func TestSummarize(t *testing.T) {
	partials := []leaderboard.PartialRow{
		full("1", "A", "10", "1-0", "100%", "5"),
		full("1", "A", "11", "1-0", "100%", "5"),
		full("2", "B", "20", "2-0", "100%", "6"),
	}
	partials[2].Rating = leaderboard.Reject("6%")

	rows := Build(partials)
	summary := Summarize(rows, partials)

	if summary.Partials != 3 || summary.Rows != 2 {
		t.Fatalf("counts: %+v", summary)
	}
	if len(summary.Fields) != len(leaderboard.Fields) {
		t.Fatalf("got %d fields", len(summary.Fields))
	}

	byField := map[leaderboard.Field]FieldAgreement{}
	for _, fa := range summary.Fields {
		byField[fa.Field] = fa
	}

	nick := byField[leaderboard.FieldNickname]
	if nick.Mean != 1 || nick.StdDev != 0 || nick.Rows != 2 {
		t.Errorf("nickname agreement: %+v", nick)
	}

	points := byField[leaderboard.FieldPoints]
	if math.Abs(points.Mean-0.75) > 1e-9 {
		t.Errorf("points mean: got %v, want 0.75", points.Mean)
	}
	if points.StdDev <= 0 {
		t.Errorf("points std dev should be positive, got %v", points.StdDev)
	}

	rating := byField[leaderboard.FieldRating]
	if rating.Rejected != 1 || rating.Rows != 1 || rating.Mean != 1 {
		t.Errorf("rating agreement: %+v", rating)
	}
}
