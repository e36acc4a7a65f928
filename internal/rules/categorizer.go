// Package rules implements the substring-based transaction categorizer.
package rules

import (
	"sort"
	"strings"

	"github.com/rappen-dev/rappen/internal/model"
)

// savingsMarker prefixes the account holder's name in transfer booking texts
// between the user's own accounts.
const savingsMarker = "account transfer: "

// Categorizer assigns categories by scanning an ordered rule set. The rule
// set is fixed at construction; rules are held as an explicit slice sorted by
// descending priority because evaluation order is load-bearing.
type Categorizer struct {
	rules []model.CategoryRule
}

// NewCategorizer builds a categorizer from the given rules. The input slice
// is copied and sorted by descending priority; relative order of
// equal-priority rules is preserved.
func NewCategorizer(ruleSet []model.CategoryRule) *Categorizer {
	sorted := make([]model.CategoryRule, len(ruleSet))
	copy(sorted, ruleSet)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})
	return &Categorizer{rules: sorted}
}

// Categorize assigns a category from the transaction's text fields.
//
// The savings-transfer check runs before everything else and applies to
// credits as well as debits: it depends on the account holder's identity, not
// on a merchant pattern. Credits are otherwise never rule-matched. Absence of
// a match always degrades to Uncategorized; this function cannot fail.
func (c *Categorizer) Categorize(bookingText, paymentPurpose string, txType model.TransactionType, userFullName string) model.Category {
	search := strings.ToLower(bookingText + " " + paymentPurpose)

	if name := strings.TrimSpace(userFullName); name != "" {
		if strings.Contains(search, savingsMarker+strings.ToLower(name)) {
			return model.CategorySavingsTransfer
		}
	}

	if txType == model.TypeCredit {
		return model.CategoryUncategorized
	}

	for _, rule := range c.rules {
		for _, pattern := range rule.Patterns {
			if strings.Contains(search, strings.ToLower(pattern)) {
				return rule.Category
			}
		}
	}

	return model.CategoryUncategorized
}

// Rules returns a copy of the rule set in evaluation order.
func (c *Categorizer) Rules() []model.CategoryRule {
	out := make([]model.CategoryRule, len(c.rules))
	copy(out, c.rules)
	return out
}
