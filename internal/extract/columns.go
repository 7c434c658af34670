package extract

import (
	"github.com/ironsheep/rankboard-ocr/internal/config"
	"github.com/ironsheep/rankboard-ocr/internal/leaderboard"
	"github.com/ironsheep/rankboard-ocr/internal/ocr"
)

// Column is the horizontal pixel window of one leaderboard column.
// Start is inclusive and End exclusive.
type Column struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Columns holds the windows of all six columns.
type Columns struct {
	Ranking    Column `json:"ranking"`
	Nickname   Column `json:"nickname"`
	Points     Column `json:"points"`
	WinsLosses Column `json:"wins_losses"`
	WinPercent Column `json:"win_percent"`
	Rating     Column `json:"rating"`
}

// ColumnsFromConfig converts the [columns] config section.
func ColumnsFromConfig(c config.Columns) Columns {
	conv := func(col config.Column) Column { return Column{Start: col.Start, End: col.End} }
	return Columns{
		Ranking:    conv(c.Ranking),
		Nickname:   conv(c.Nickname),
		Points:     conv(c.Points),
		WinsLosses: conv(c.WinsLosses),
		WinPercent: conv(c.WinPercent),
		Rating:     conv(c.Rating),
	}
}

// field binds a value column to its OCR whitelist and normalizer.
type field struct {
	name      leaderboard.Field
	column    func(Columns) Column
	whitelist string
	normalize func(string) leaderboard.Reading
}

// fields lists the value columns in the order they are read.
var fields = []field{
	{
		name:      leaderboard.FieldNickname,
		column:    func(c Columns) Column { return c.Nickname },
		normalize: NormalizeNickname,
	},
	{
		name:      leaderboard.FieldPoints,
		column:    func(c Columns) Column { return c.Points },
		whitelist: ocr.DigitsWithComma,
		normalize: NormalizePoints,
	},
	{
		name:      leaderboard.FieldWinsLosses,
		column:    func(c Columns) Column { return c.WinsLosses },
		whitelist: ocr.DigitsWithDash,
		normalize: NormalizeWinsLosses,
	},
	{
		name:      leaderboard.FieldWinPercent,
		column:    func(c Columns) Column { return c.WinPercent },
		whitelist: ocr.DigitsWithPercent,
		normalize: NormalizeWinPercent,
	},
	{
		name:      leaderboard.FieldRating,
		column:    func(c Columns) Column { return c.Rating },
		whitelist: ocr.Digits,
		normalize: NormalizeRating,
	},
}

// rankingWhitelist restricts the ranking column.
const rankingWhitelist = ocr.Digits

// Lookup returns the column called name, which is "ranking" or one of the
// leaderboard field names.
func (c Columns) Lookup(name string) (Column, bool) {
	if name == "ranking" {
		return c.Ranking, true
	}
	for _, f := range fields {
		if string(f.name) == name {
			return f.column(c), true
		}
	}
	return Column{}, false
}
