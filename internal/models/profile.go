package models

// RiskLevel is the derived investment risk posture of a user
type RiskLevel string

const (
	RiskSafe       RiskLevel = "safe"
	RiskModerate   RiskLevel = "moderate"
	RiskAggressive RiskLevel = "aggressive"
)

// Korean returns the display form used in narrative text
func (r RiskLevel) Korean() string {
	switch r {
	case RiskSafe:
		return "안전"
	case RiskAggressive:
		return "적극"
	default:
		return "보통"
	}
}

// ParseRiskPreference maps a stated preference to a risk level. Both the
// wire form and the Korean display form are accepted.
func ParseRiskPreference(s string) (RiskLevel, bool) {
	switch s {
	case string(RiskSafe), "안전":
		return RiskSafe, true
	case string(RiskModerate), "보통":
		return RiskModerate, true
	case string(RiskAggressive), "적극":
		return RiskAggressive, true
	default:
		return "", false
	}
}

// SpendingTypeStable marks the upstream "stable spender" label that
// biases the risk level toward safe
const SpendingTypeStable = "안정형"

// RecommendationInput is the internal working form of a recommendation
// request, produced by the boundary adapter from the wire DTO
type RecommendationInput struct {
	TotalSpent             int64
	CategoryBreakdown      CategoryBreakdown
	SpendingTrend          string
	AvgTransaction         int64
	TopExpenses            []TopExpense
	SpendingType           string
	RiskPatterns           []string
	OverspendingCategories []string
	SavingPlans            SavingPlans

	MonthlyIncome              int64
	CurrentSavings             int64
	InvestmentPeriodPreference string
	RiskPreference             string
	FinancialGoals             []string
}

// UserProfile is the request-scoped profile derived from a
// RecommendationInput before scoring
type UserProfile struct {
	TotalSpent      int64     `json:"total_spent"`
	SavingPotential int64     `json:"saving_potential"`
	SpendingRatio   float64   `json:"spending_ratio"`
	RiskLevel       RiskLevel `json:"risk_level"`
	MonthlyIncome   int64     `json:"monthly_income"`
	CurrentSavings  int64     `json:"current_savings"`
	FinancialGoals  []string  `json:"financial_goals"`
}
