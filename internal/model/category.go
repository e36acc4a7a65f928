package model

// Category is one of the fixed set of spending categories.
type Category string

// Categories with special meaning to the categorizer and summary folds.
const (
	// CategorySavingsTransfer marks transfers to or from the user's own
	// savings account. Excluded from income/outcome sums.
	CategorySavingsTransfer Category = "Savings Transfer"
	// CategoryUncategorized is the fallback when no rule matches.
	CategoryUncategorized Category = "Uncategorized"
)

// Categories is the full ordered set of valid categories.
var Categories = []Category{
	// Essential/Fixed Costs
	"Rent",
	"Health Insurance",
	"Mobile & Internet",
	"Bank Fees",
	// Daily Living
	"Groceries",
	"Dining Out",
	"Cash Withdrawal",
	// Transportation
	"Public Transport",
	"Rideshare",
	"Travel",
	// Shopping
	"Electronics",
	"Home & Furnishing",
	"Clothing",
	"Online Shopping",
	// Entertainment & Subscriptions
	"Streaming",
	"Gaming",
	"AI Tools",
	// Health & Wellness
	"Medical & Pharmacy",
	"Fitness",
	"Personal Care",
	// Other
	"Education",
	"Insurance",
	CategorySavingsTransfer,
	CategoryUncategorized,
}

// ParseCategory validates a raw string against the fixed category set.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}
