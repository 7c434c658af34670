package rowscan

import "github.com/ironsheep/rankboard-ocr/internal/imaging"

// RowType is the visual class of a leaderboard row, read from its background color.
type RowType string

const (
	// Heading is the near-black title band above the table.
	Heading RowType = "heading"
	// Personal is the highlighted row of the recording player.
	Personal RowType = "personal"
	// Dark is a row with the darker alternating background.
	Dark RowType = "dark"
	// Light is a row with the lighter alternating background.
	Light RowType = "light"
)

// Brightness thresholds on R+G+B and the red channel.
const (
	HeadingMaxSum  = 40
	PersonalMinRed = 140
	DarkMaxSum     = 140
)

// Rule maps colors matching Match to Type.
type Rule struct {
	Name  string
	Match func(c imaging.RGBColor) bool
	Type  RowType
}

// DefaultRules returns the rule chain for the stock ranking screen, in
// evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:  "near-black",
			Match: func(c imaging.RGBColor) bool { return c.Sum() < HeadingMaxSum },
			Type:  Heading,
		},
		{
			Name:  "red-highlight",
			Match: func(c imaging.RGBColor) bool { return c.R > PersonalMinRed },
			Type:  Personal,
		},
		{
			Name:  "dim",
			Match: func(c imaging.RGBColor) bool { return c.Sum() < DarkMaxSum },
			Type:  Dark,
		},
	}
}

// Classifier labels probe colors with an ordered rule chain. The first matching
// rule wins; colors no rule matches get Fallback.
type Classifier struct {
	Rules    []Rule
	Fallback RowType
}

// DefaultClassifier returns the classifier for the stock ranking screen.
func DefaultClassifier() Classifier {
	return Classifier{Rules: DefaultRules(), Fallback: Light}
}

// Classify returns the row type for c.
func (cl Classifier) Classify(c imaging.RGBColor) RowType {
	for _, r := range cl.Rules {
		if r.Match(c) {
			return r.Type
		}
	}
	return cl.Fallback
}

// Classify labels c with the default rule chain.
func Classify(c imaging.RGBColor) RowType {
	return defaultClassifier.Classify(c)
}

var defaultClassifier = DefaultClassifier()
