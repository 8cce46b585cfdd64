// Package advisor produces a natural-language review of a user's
// finances by delegating to Gemini.
//
// This is the only asynchronous boundary in the system: the caller
// suspends for one outbound request, triggered exclusively by an
// explicit user action. There is no retry and no caching; the last
// response to arrive is the one the client renders.
package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"wealthwise/internal/analytics"
	"wealthwise/internal/category"
	"wealthwise/internal/logger"
	"wealthwise/internal/store"
)

// FallbackMessage is returned verbatim whenever the external service
// fails. Advice requests never surface an error past this package.
const FallbackMessage = "AI 顧問暫時無法提供建議，請稍後再試。"

// recentLimit caps how many transactions are included in the prompt.
const recentLimit = 20

// textGenerator is the narrow seam over the generative backend, kept
// small so tests can swap in a failing or canned implementation.
type textGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// geminiGenerator calls the Gemini API via google.golang.org/genai.
type geminiGenerator struct {
	model string
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return "", fmt.Errorf("create genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return resp.Text(), nil
}

// Advisor builds prompts from financial snapshots and returns advice text.
type Advisor struct {
	gen textGenerator
}

// New creates an Advisor backed by the given Gemini model.
func New(model string) *Advisor {
	return &Advisor{gen: &geminiGenerator{model: model}}
}

// newWithGenerator is the test constructor.
func newWithGenerator(gen textGenerator) *Advisor {
	return &Advisor{gen: gen}
}

// RequestAdvice sends a textual snapshot of the user's finances to the
// model and returns its free-form response. Any failure, including an
// empty response, degrades to FallbackMessage; the returned string is
// always renderable as-is.
func (a *Advisor) RequestAdvice(ctx context.Context, snap store.Snapshot) string {
	prompt := buildPrompt(snap, time.Now().Format("2006-01"))

	text, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		logger.Get().Warnw("advice request failed", "error", err)
		return FallbackMessage
	}
	if strings.TrimSpace(text) == "" {
		logger.Get().Warn("advice request returned empty response")
		return FallbackMessage
	}
	return text
}

// buildPrompt renders the snapshot as plain text for the model. Amounts
// are written as-is; the model is asked for actionable advice in the
// user's language.
func buildPrompt(snap store.Snapshot, yearMonth string) string {
	var b strings.Builder

	b.WriteString("你是一位專業的理財顧問。以下是使用者目前的財務狀況，")
	b.WriteString("請針對收支結構、預算執行與儲蓄目標，提供具體、務實的改善建議。\n")
	b.WriteString("請直接以繁體中文回覆純文字，不要使用 Markdown。\n\n")

	fmt.Fprintf(&b, "== 資產帳戶 (總額 %d) ==\n", analytics.TotalBalance(snap.Accounts))
	for _, acc := range snap.Accounts {
		fmt.Fprintf(&b, "- %s (%s): %d\n", acc.Name, acc.BankName, acc.Balance)
	}

	fmt.Fprintf(&b, "\n== 本月收支 (%s) ==\n", yearMonth)
	fmt.Fprintf(&b, "收入: %d\n", analytics.MonthlyIncome(snap.Transactions, yearMonth))
	fmt.Fprintf(&b, "支出: %d\n", analytics.MonthlyExpense(snap.Transactions, yearMonth))

	if len(snap.Budgets) > 0 {
		b.WriteString("\n== 預算執行 ==\n")
		for _, budget := range snap.Budgets {
			c := analytics.BudgetConsumption(budget, snap.Transactions, yearMonth)
			fmt.Fprintf(&b, "- %s: 已用 %d / 上限 %d (%.0f%%)\n",
				category.DisplayName(budget.Category), c.Spent, budget.MonthlyLimit, analytics.ClampPercent(c.Percent))
		}
	}

	if len(snap.Goals) > 0 {
		b.WriteString("\n== 儲蓄目標 ==\n")
		for _, goal := range snap.Goals {
			fmt.Fprintf(&b, "- %s: %d / %d，期限 %s\n",
				goal.Name, goal.CurrentAmount, goal.TargetAmount, goal.Deadline)
		}
	}

	recent := analytics.RecentTransactions(snap.Transactions, recentLimit)
	if len(recent) > 0 {
		b.WriteString("\n== 近期交易 ==\n")
		for _, t := range recent {
			sign := "-"
			if t.Kind == "income" {
				sign = "+"
			}
			fmt.Fprintf(&b, "%s %s %s%d %s\n", t.Date, category.DisplayName(t.Category), sign, t.Amount, t.Note)
		}
	}

	return b.String()
}
