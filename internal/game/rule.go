package game

import (
	"fmt"
	"strings"
)

type Rule struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	// BustLimit is the highest total a hand may hold.
	BustLimit int `json:"bust_limit"`
	// DealerLimit is the total below which the dealer keeps hitting.
	DealerLimit int `json:"dealer_limit"`
	// AceSoftening is subtracted when a soft ace is recounted as 1.
	AceSoftening int `json:"ace_softening"`
}

var (
	DefaultRule = Rule{
		ID:           "1",
		Name:         "Classic",
		Description:  `One deck, one player. Dealer hits below 17 and stands on every 17. Aces count 11 or 1.`,
		BustLimit:    21,
		DealerLimit:  17,
		AceSoftening: 10,
	}
	RuleText string
)

func init() {
	RuleText = DefaultRule.Text()
}

func (r Rule) Text() string {
	var bf strings.Builder
	bf.WriteString(fmt.Sprintf("Rule: %s, ID: %s\n", r.Name, r.ID))
	bf.WriteString(r.Description)
	bf.WriteString(fmt.Sprintf("\n - Bust above: %d", r.BustLimit))
	bf.WriteString(fmt.Sprintf("\n - Dealer hits below: %d", r.DealerLimit))
	bf.WriteString("\n - Ace: 11, or 1 when 11 would bust")
	bf.WriteString("\n - Face cards: 10")
	return bf.String()
}
