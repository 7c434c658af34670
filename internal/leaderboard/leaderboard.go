// Package leaderboard defines the records that flow from per-frame row
// extraction into cross-frame consensus.
package leaderboard

import (
	"encoding/json"
)

// Field names one of the non-ranking columns of a leaderboard row.
type Field string

const (
	FieldNickname   Field = "nickname"
	FieldPoints     Field = "points"
	FieldWinsLosses Field = "wins_losses"
	FieldWinPercent Field = "win_percent"
	FieldRating     Field = "rating"
)

// Fields lists the voted fields in column order.
var Fields = []Field{FieldNickname, FieldPoints, FieldWinsLosses, FieldWinPercent, FieldRating}

// ReadingState tells whether a field was seen and whether it passed validation.
type ReadingState int

const (
	// Unread means OCR produced nothing for the cell.
	Unread ReadingState = iota
	// Rejected means OCR produced text that failed the column's validation rule.
	Rejected
	// Accepted means the text passed validation and may take part in voting.
	Accepted
)

func (s ReadingState) String() string {
	switch s {
	case Rejected:
		return "rejected"
	case Accepted:
		return "accepted"
	default:
		return "unread"
	}
}

// Reading is one frame's observation of a nullable field.
//
// Only Accepted readings count as values; Unread and Rejected readings are
// both null from the voter's point of view. Raw keeps the text that was
// rejected so diagnostics can show what the OCR engine returned.
type Reading struct {
	Value string       `json:"value,omitempty"`
	Raw   string       `json:"raw,omitempty"`
	State ReadingState `json:"-"`
}

// Accept returns an accepted reading for value.
func Accept(value string) Reading {
	return Reading{Value: value, Raw: value, State: Accepted}
}

// Reject returns a rejected reading that keeps the raw OCR text.
func Reject(raw string) Reading {
	return Reading{Raw: raw, State: Rejected}
}

// IsNull reports whether the reading carries no usable value.
func (r Reading) IsNull() bool {
	return r.State != Accepted
}

// MarshalJSON encodes accepted readings as strings and everything else as null.
func (r Reading) MarshalJSON() ([]byte, error) {
	if r.IsNull() {
		return []byte("null"), nil
	}
	return json.Marshal(r.Value)
}

// PartialRow is one frame's reading of one leaderboard row.
//
// RankingKey is never empty: rows without a ranking are dropped before a
// PartialRow is built.
type PartialRow struct {
	RankingKey string  `json:"ranking"`
	Nickname   Reading `json:"nickname"`
	Points     Reading `json:"points"`
	WinsLosses Reading `json:"wins_losses"`
	WinPercent Reading `json:"win_percent"`
	Rating     Reading `json:"rating"`

	// Frame is the index of the source frame in decoding order.
	Frame int `json:"frame"`
}

// Get returns the reading for field f.
func (p PartialRow) Get(f Field) Reading {
	switch f {
	case FieldNickname:
		return p.Nickname
	case FieldPoints:
		return p.Points
	case FieldWinsLosses:
		return p.WinsLosses
	case FieldWinPercent:
		return p.WinPercent
	case FieldRating:
		return p.Rating
	}
	return Reading{}
}

// Set stores the reading for field f.
func (p *PartialRow) Set(f Field, r Reading) {
	switch f {
	case FieldNickname:
		p.Nickname = r
	case FieldPoints:
		p.Points = r
	case FieldWinsLosses:
		p.WinsLosses = r
	case FieldWinPercent:
		p.WinPercent = r
	case FieldRating:
		p.Rating = r
	}
}

// Row is the reconciled record for one ranking key.
type Row struct {
	RankingKey string  `json:"ranking"`
	Nickname   *string `json:"nickname"`
	Points     *string `json:"points"`
	WinsLosses *string `json:"wins_losses"`
	WinPercent *string `json:"win_percent"`
	Rating     *string `json:"rating"`

	// Complete is false when at least one field never received a value.
	Complete bool `json:"complete"`

	// Observations is the number of partial rows that shared this key.
	Observations int `json:"observations"`
}

// Get returns the value for field f, or nil.
func (r Row) Get(f Field) *string {
	switch f {
	case FieldNickname:
		return r.Nickname
	case FieldPoints:
		return r.Points
	case FieldWinsLosses:
		return r.WinsLosses
	case FieldWinPercent:
		return r.WinPercent
	case FieldRating:
		return r.Rating
	}
	return nil
}

// Set stores value for field f.
func (r *Row) Set(f Field, value *string) {
	switch f {
	case FieldNickname:
		r.Nickname = value
	case FieldPoints:
		r.Points = value
	case FieldWinsLosses:
		r.WinsLosses = value
	case FieldWinPercent:
		r.WinPercent = value
	case FieldRating:
		r.Rating = value
	}
}

// MissingFields returns the fields that have no value, in column order.
func (r Row) MissingFields() []Field {
	var missing []Field
	for _, f := range Fields {
		if r.Get(f) == nil {
			missing = append(missing, f)
		}
	}
	return missing
}
