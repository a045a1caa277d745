package models

// RawTransaction is one payment record as supplied by the caller. The
// analysis pipeline never mutates it; enrichment produces a copy.
type RawTransaction struct {
	ID            string `json:"transaction_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Merchant      string `json:"merchant"`
	Category      string `json:"category"`
	Amount        int64  `json:"amount"`
	PaymentMethod string `json:"payment_method"`
	Balance       int64  `json:"balance"`
}

// ClassifiedTransaction is a RawTransaction annotated with the derived
// time bucket and hint labels. Immutable once built.
type ClassifiedTransaction struct {
	RawTransaction

	IsWeekend    bool     `json:"is_weekend"`
	WeekdayType  string   `json:"weekday_type"`
	TimeBucket   string   `json:"time_bucket"`
	AmountHints  []string `json:"amount_hints"`
	KeywordHints []string `json:"keyword_hints"`
}

// CategoryStat is one entry of a category spend breakdown
type CategoryStat struct {
	Amount           int64   `json:"amount"`
	Ratio            float64 `json:"ratio"`
	TransactionCount int     `json:"transaction_count"`
	AvgAmount        int64   `json:"avg_amount"`
}

// CategoryBreakdown maps a category name to its spend statistics
type CategoryBreakdown map[string]CategoryStat

// TopExpense is one of the largest single payments in an analysis window
type TopExpense struct {
	Merchant string `json:"merchant"`
	Amount   int64  `json:"amount"`
	Category string `json:"category"`
}

// SpendingAnalysis is the aggregate view built from classified
// transactions; it feeds both the saving engine and the recommendation
// engine.
type SpendingAnalysis struct {
	TotalSpent             int64             `json:"total_spent"`
	CategoryBreakdown      CategoryBreakdown `json:"category_breakdown"`
	AvgTransaction         int64             `json:"avg_transaction"`
	TopExpenses            []TopExpense      `json:"top_expenses"`
	SpendingType           string            `json:"spending_type"`
	RiskPatterns           []string          `json:"risk_patterns"`
	OverspendingCategories []string          `json:"overspending_categories"`
}
