package domain

import "fmt"

// Fragment is one budget-bounded piece of pre-processed input text.
type Fragment struct {
	Text      string
	Oversized bool // no safe split point existed within the budget
}

// Seed is the two-part token seed the upstream page publishes. It rotates
// hourly; both halves feed the signature algorithm.
type Seed struct {
	First  int64
	Second int64
}

func (s Seed) String() string {
	return fmt.Sprintf("%d.%d", s.First, s.Second)
}

// SignedFragment pairs a fragment with everything the request builder needs
// to form one outbound call.
type SignedFragment struct {
	Index     int    `json:"idx"`
	Total     int    `json:"total"`
	Text      string `json:"q"`
	Length    int    `json:"textlen"` // in runes
	Signature string `json:"tk"`
	Oversized bool   `json:"oversized,omitempty"`
}
