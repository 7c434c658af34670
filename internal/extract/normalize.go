package extract

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/ironsheep/rankboard-ocr/internal/leaderboard"
)

// NormalizeRanking trims raw and reports whether a ranking key was read.
func NormalizeRanking(raw string) (string, bool) {
	key := strings.TrimSpace(raw)
	return key, key != ""
}

// NormalizeNickname trims raw and composes it to NFC so the same name read in
// different frames compares equal. Nicknames are not validated.
func NormalizeNickname(raw string) leaderboard.Reading {
	v := strings.TrimSpace(raw)
	if v == "" {
		return leaderboard.Reading{}
	}
	return leaderboard.Accept(norm.NFC.String(v))
}

// NormalizePoints rejects values with a dangling thousands separator.
func NormalizePoints(raw string) leaderboard.Reading {
	return validate(raw, func(v string) bool {
		return !strings.HasPrefix(v, ",") && !strings.HasSuffix(v, ",")
	})
}

// NormalizeWinsLosses rejects values missing either side of the dash.
func NormalizeWinsLosses(raw string) leaderboard.Reading {
	return validate(raw, func(v string) bool {
		return !strings.HasPrefix(v, "-") && !strings.HasSuffix(v, "-")
	})
}

// NormalizeWinPercent accepts values ending in exactly one percent sign with no
// other percent sign anywhere.
func NormalizeWinPercent(raw string) leaderboard.Reading {
	return validate(raw, func(v string) bool {
		return strings.HasSuffix(v, "%") && strings.Count(v, "%") == 1
	})
}

// NormalizeRating trims raw.
func NormalizeRating(raw string) leaderboard.Reading {
	return validate(raw, func(string) bool { return true })
}

// validate trims raw and applies ok. Blank text is Unread, not Rejected.
func validate(raw string, ok func(string) bool) leaderboard.Reading {
	v := strings.TrimSpace(raw)
	if v == "" {
		return leaderboard.Reading{}
	}
	if !ok(v) {
		return leaderboard.Reject(v)
	}
	return leaderboard.Accept(v)
}
