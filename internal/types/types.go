package types

import "encoding/json"

// Category identifies the kind of personal data a match represents.
type Category string

const (
	CatPhone    Category = "PHONE"
	CatEmail    Category = "EMAIL"
	CatCard     Category = "CARD"
	CatRRN      Category = "RRN"
	CatAccount  Category = "ACCOUNT"
	CatName     Category = "NAME"
	CatAddress  Category = "ADDRESS"
	CatIDNumber Category = "ID_NUMBER"
)

// Source tells which detection path produced a match.
type Source string

const (
	SourcePattern  Source = "PATTERN"
	SourceExternal Source = "EXTERNAL"
)

// Categories lists every supported category in catalog order.
var Categories = []Category{
	CatPhone, CatEmail, CatCard, CatRRN, CatAccount,
	CatName, CatAddress, CatIDNumber,
}

// weights are the static per-category risk weights in [0,1]. They are fixed
// configuration, never mutated at runtime, so concurrent reads need no lock.
var weights = map[Category]float64{
	CatRRN:      1.0,
	CatCard:     0.9,
	CatAccount:  0.8,
	CatPhone:    0.6,
	CatEmail:    0.5,
	CatName:     0.4,
	CatAddress:  0.3,
	CatIDNumber: 0.2,
}

// defaultWeight applies to categories outside the table (external detectors
// may report types we do not know).
const defaultWeight = 0.2

// Weight returns the risk weight for a category.
func (c Category) Weight() float64 {
	if w, ok := weights[c]; ok {
		return w
	}
	return defaultWeight
}

// Token returns the mask token substituted for a matched span, e.g. "<PHONE>".
func (c Category) Token() string {
	return "<" + string(c) + ">"
}

// Match describes one detected PII span. Offsets are Unicode code-point
// indexes into the original text, half-open [Start, End). Value always equals
// the run of code points the span covers. Matches are value types and are
// never mutated after construction.
type Match struct {
	Category   Category
	Value      string
	Start      int
	End        int
	Confidence float64
	Source     Source
}

// Span returns the [start, end) pair in the wire shape.
func (m Match) Span() [2]int { return [2]int{m.Start, m.End} }

// matchWire is the JSON shape shared by the HTTP API and the audit log.
type matchWire struct {
	Type       Category `json:"type"`
	Value      string   `json:"value"`
	Span       [2]int   `json:"span"`
	Confidence float64  `json:"confidence"`
	Source     Source   `json:"source"`
}

// MarshalJSON renders the span as a two-element array.
func (m Match) MarshalJSON() ([]byte, error) {
	return json.Marshal(matchWire{
		Type:       m.Category,
		Value:      m.Value,
		Span:       m.Span(),
		Confidence: m.Confidence,
		Source:     m.Source,
	})
}

// UnmarshalJSON accepts the wire shape produced by MarshalJSON.
func (m *Match) UnmarshalJSON(b []byte) error {
	var w matchWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*m = Match{
		Category:   w.Type,
		Value:      w.Value,
		Start:      w.Span[0],
		End:        w.Span[1],
		Confidence: w.Confidence,
		Source:     w.Source,
	}
	return nil
}

// Overlaps reports whether two spans intersect. Adjacent spans do not overlap.
func (m Match) Overlaps(o Match) bool {
	return m.Start < o.End && o.Start < m.End
}

// InjectionVerdict is the external detector's prompt-injection analysis.
type InjectionVerdict struct {
	Detected    bool     `json:"injection_detected"`
	AttackTypes []string `json:"attack_types"`
	Confidence  float64  `json:"confidence"`
	Details     string   `json:"details"`
}
