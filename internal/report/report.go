// Package report assembles and renders monthly finance reports.
package report

import (
	"fjacquet/fintrack/internal/ledger"
	"fjacquet/fintrack/internal/models"
)

// MonthlyReport gathers every analytic of one month for the logged-in user.
type MonthlyReport struct {
	Username        string
	Month           string
	Summary         models.MonthlySummary
	Categories      models.CategoryBreakdown
	Recommendations []string
}

// Build queries the ledger's session account for month.
func Build(l *ledger.Ledger, month string) (*MonthlyReport, error) {
	user, ok := l.CurrentUser()
	if !ok {
		return nil, &ledger.SessionError{Operation: "build report"}
	}

	summary, err := l.MonthlySummary(month)
	if err != nil {
		return nil, err
	}
	categories, err := l.CategoryAnalytics(month)
	if err != nil {
		return nil, err
	}
	recs, err := l.Recommendations(month)
	if err != nil {
		return nil, err
	}

	return &MonthlyReport{
		Username:        user,
		Month:           month,
		Summary:         summary,
		Categories:      categories,
		Recommendations: recs,
	}, nil
}

// document is the serialized form; amounts are fixed two-decimal strings.
type document struct {
	Username        string          `json:"username" yaml:"username"`
	Month           string          `json:"month" yaml:"month"`
	TotalIncome     string          `json:"total_income" yaml:"total_income"`
	TotalExpense    string          `json:"total_expense" yaml:"total_expense"`
	Savings         string          `json:"savings" yaml:"savings"`
	Categories      []categoryEntry `json:"categories" yaml:"categories"`
	Recommendations []string        `json:"recommendations" yaml:"recommendations"`
}

type categoryEntry struct {
	Category string `json:"category" yaml:"category"`
	Total    string `json:"total" yaml:"total"`
}

func (r *MonthlyReport) document() document {
	doc := document{
		Username:        r.Username,
		Month:           r.Month,
		TotalIncome:     models.FormatAmount(r.Summary.TotalIncome),
		TotalExpense:    models.FormatAmount(r.Summary.TotalExpense),
		Savings:         models.FormatAmount(r.Summary.Savings),
		Categories:      make([]categoryEntry, 0, len(r.Categories)),
		Recommendations: r.Recommendations,
	}
	for _, c := range r.Categories {
		doc.Categories = append(doc.Categories, categoryEntry{Category: c.Category, Total: models.FormatAmount(c.Total)})
	}
	if doc.Recommendations == nil {
		doc.Recommendations = []string{}
	}
	return doc
}
