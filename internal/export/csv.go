// Package export renders a user's transactions as delimited text for
// offline use.
package export

import (
	"strconv"
	"strings"

	"wealthwise/internal/category"
	"wealthwise/internal/models"
)

// header is the fixed column order: date, category, kind, account name,
// note, amount.
var header = []string{"日期", "分類", "類型", "帳戶", "備註", "金額"}

// kindLabel renders a transaction kind in the export locale.
func kindLabel(kind models.TransactionKind) string {
	if kind == models.TransactionKindIncome {
		return "收入"
	}
	return "支出"
}

// CSV renders transactions as comma-separated rows in fixed column order.
// Account names are resolved from the accounts slice; a dangling account
// reference renders as 未知. Amounts are emitted as plain numbers. Text
// fields are not escaped for embedded delimiters; this surface accepts
// that limitation.
func CSV(transactions []models.Transaction, accounts []models.Account) string {
	names := make(map[string]string, len(accounts))
	for _, a := range accounts {
		names[a.ID] = a.Name
	}

	var b strings.Builder
	b.WriteString(strings.Join(header, ","))
	for _, t := range transactions {
		name, ok := names[t.AccountID]
		if !ok {
			name = "未知"
		}
		row := []string{
			t.Date,
			category.DisplayName(t.Category),
			kindLabel(t.Kind),
			name,
			t.Note,
			strconv.FormatInt(t.Amount, 10),
		}
		b.WriteByte('\n')
		b.WriteString(strings.Join(row, ","))
	}
	return b.String()
}
