package dto

import (
	"fincoach/internal/config"
	"fincoach/internal/models"
)

// SpendingAnalysisRequest carries a previously computed analysis into a
// recommendation request
type SpendingAnalysisRequest struct {
	TotalSpent             int64                           `json:"total_spent" validate:"required,gt=0"`
	CategoryBreakdown      map[string]models.CategoryStat  `json:"category_breakdown"`
	SpendingTrend          string                          `json:"spending_trend"`
	AvgTransaction         int64                           `json:"avg_transaction" validate:"gte=0"`
	TopExpenses            []models.TopExpense             `json:"top_expenses"`
	SpendingType           string                          `json:"spending_type"`
	RiskPatterns           []string                        `json:"risk_patterns"`
	OverspendingCategories []string                        `json:"overspending_categories"`
}

// SavingPlanRequest is one tier of a previously generated saving plan
type SavingPlanRequest struct {
	Level          string                  `json:"level"`
	Description    string                  `json:"description"`
	ExpectedSaving int64                   `json:"expected_saving" validate:"gte=0"`
	ReductionRate  string                  `json:"reduction_rate"`
	Strategies     []models.SavingStrategy `json:"strategies"`
}

// UserInfoRequest is the optional self-reported financial profile
type UserInfoRequest struct {
	MonthlyIncome              int64    `json:"monthly_income" validate:"gte=0"`
	CurrentSavings             int64    `json:"current_savings" validate:"gte=0"`
	InvestmentPeriodPreference string   `json:"investment_period_preference"`
	RiskPreference             string   `json:"risk_preference" validate:"omitempty,oneof=safe moderate aggressive 안전 보통 적극"`
	FinancialGoals             []string `json:"financial_goals"`
}

// RecommendRequest is the product recommendation request body
type RecommendRequest struct {
	Analysis    SpendingAnalysisRequest      `json:"spending_analysis" validate:"required"`
	SavingPlans map[string]SavingPlanRequest `json:"saving_plans"`
	UserInfo    UserInfoRequest              `json:"user_info"`
}

// ToInput converts the wire request to the engine's working form
func (r RecommendRequest) ToInput() models.RecommendationInput {
	breakdown := make(models.CategoryBreakdown, len(r.Analysis.CategoryBreakdown))
	for name, stat := range r.Analysis.CategoryBreakdown {
		breakdown[name] = stat
	}

	plans := make(models.SavingPlans, len(r.SavingPlans))
	for key, plan := range r.SavingPlans {
		plans[config.SavingLevel(key)] = models.SavingPlan{
			Level:          plan.Level,
			Description:    plan.Description,
			ExpectedSaving: plan.ExpectedSaving,
			ReductionRate:  plan.ReductionRate,
			Strategies:     plan.Strategies,
		}
	}

	return models.RecommendationInput{
		TotalSpent:             r.Analysis.TotalSpent,
		CategoryBreakdown:      breakdown,
		SpendingTrend:          r.Analysis.SpendingTrend,
		AvgTransaction:         r.Analysis.AvgTransaction,
		TopExpenses:            r.Analysis.TopExpenses,
		SpendingType:           r.Analysis.SpendingType,
		RiskPatterns:           r.Analysis.RiskPatterns,
		OverspendingCategories: r.Analysis.OverspendingCategories,
		SavingPlans:            plans,

		MonthlyIncome:              r.UserInfo.MonthlyIncome,
		CurrentSavings:             r.UserInfo.CurrentSavings,
		InvestmentPeriodPreference: r.UserInfo.InvestmentPeriodPreference,
		RiskPreference:             r.UserInfo.RiskPreference,
		FinancialGoals:             r.UserInfo.FinancialGoals,
	}
}

// RecommendResponse is the recommendation payload with the optional
// LLM-generated narrative attached
type RecommendResponse struct {
	models.RecommendationResult
	Insight string `json:"insight,omitempty"`
}

// ProductListResponse wraps a raw catalog listing
type ProductListResponse struct {
	Count    int         `json:"count"`
	Products interface{} `json:"products"`
}
