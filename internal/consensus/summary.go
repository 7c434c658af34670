package consensus

import (
	"gonum.org/v1/gonum/stat"

	"github.com/ironsheep/rankboard-ocr/internal/leaderboard"
)

// FieldAgreement describes how consistently one field was read across frames.
type FieldAgreement struct {
	Field leaderboard.Field `json:"field"`
	// Mean is the average, over rows with at least one accepted reading, of the
	// share of accepted readings that matched the winning value.
	Mean float64 `json:"mean"`
	// StdDev is the spread of that share across rows.
	StdDev float64 `json:"std_dev"`
	// Rows is the number of rows that contributed.
	Rows int `json:"rows"`
	// Rejected counts readings that failed validation.
	Rejected int `json:"rejected"`
}

// Summary reports agreement for every field.
type Summary struct {
	Fields   []FieldAgreement `json:"fields"`
	Partials int              `json:"partials"`
	Rows     int              `json:"rows"`
}

// Summarize measures how strongly each consensus value was supported by the
// partial rows it was built from.
func Summarize(rows []leaderboard.Row, partials []leaderboard.PartialRow) Summary {
	byKey := make(map[string][]leaderboard.PartialRow)
	for _, p := range partials {
		byKey[p.RankingKey] = append(byKey[p.RankingKey], p)
	}

	summary := Summary{Partials: len(partials), Rows: len(rows)}
	for _, f := range leaderboard.Fields {
		fa := FieldAgreement{Field: f}
		var shares []float64
		for _, row := range rows {
			winner := row.Get(f)
			group := byKey[row.RankingKey]
			for _, p := range group {
				if p.Get(f).State == leaderboard.Rejected {
					fa.Rejected++
				}
			}
			if winner == nil {
				continue
			}
			values := accepted(group, f)
			matched := 0
			for _, v := range values {
				if v == *winner {
					matched++
				}
			}
			shares = append(shares, float64(matched)/float64(len(values)))
		}

		fa.Rows = len(shares)
		switch len(shares) {
		case 0:
		case 1:
			fa.Mean = shares[0]
		default:
			fa.Mean, fa.StdDev = stat.MeanStdDev(shares, nil)
		}
		summary.Fields = append(summary.Fields, fa)
	}
	return summary
}
