// Package category holds the closed set of transaction categories.
//
// Each category has a stable identifier used as the join key between
// transactions and budgets, and a localized display name used only for
// rendering. Keeping the two separate means display text can change
// without breaking stored data.
package category

// Kind classifies a category as income or expense.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Category is one entry of the registry.
type Category struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Kind        Kind   `json:"kind"`
}

// registry is the closed category set, in display order.
var registry = []Category{
	{ID: "food", DisplayName: "飲食", Kind: KindExpense},
	{ID: "transport", DisplayName: "交通", Kind: KindExpense},
	{ID: "shopping", DisplayName: "購物", Kind: KindExpense},
	{ID: "entertainment", DisplayName: "娛樂", Kind: KindExpense},
	{ID: "housing", DisplayName: "居住", Kind: KindExpense},
	{ID: "medical", DisplayName: "醫療", Kind: KindExpense},
	{ID: "education", DisplayName: "教育", Kind: KindExpense},
	{ID: "utilities", DisplayName: "雜支", Kind: KindExpense},
	{ID: "salary", DisplayName: "薪資", Kind: KindIncome},
	{ID: "bonus", DisplayName: "獎金", Kind: KindIncome},
	{ID: "investment", DisplayName: "投資回報", Kind: KindIncome},
	{ID: "other", DisplayName: "其他", Kind: KindIncome},
}

var byID = func() map[string]Category {
	m := make(map[string]Category, len(registry))
	for _, c := range registry {
		m[c.ID] = c
	}
	return m
}()

// All returns the full registry in display order.
func All() []Category {
	out := make([]Category, len(registry))
	copy(out, registry)
	return out
}

// ByKind returns the registry entries of the given kind, in display order.
func ByKind(kind Kind) []Category {
	var out []Category
	for _, c := range registry {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Lookup returns the category for id, and whether it exists.
func Lookup(id string) (Category, bool) {
	c, ok := byID[id]
	return c, ok
}

// Valid reports whether id names a registered category of the given kind.
func Valid(id string, kind Kind) bool {
	c, ok := byID[id]
	return ok && c.Kind == kind
}

// IsKnown reports whether id names any registered category.
func IsKnown(id string) bool {
	_, ok := byID[id]
	return ok
}

// DisplayName returns the localized name for id. Unknown ids are echoed
// back so stale stored data still renders.
func DisplayName(id string) string {
	if c, ok := byID[id]; ok {
		return c.DisplayName
	}
	return id
}
