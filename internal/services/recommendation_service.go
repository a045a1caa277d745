package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"fincoach/internal/models"
)

// Scoring and selection constants for the product recommendation engine
const (
	minRecommendationScore = 30
	maxRecommendationScore = 100
	topPicksPerCatalog     = 3
	maxReasonsPerProduct   = 3

	rateScoreWeight       = 400
	conditionScorePoints  = 3
	conditionScoreCap     = 15
	amountFitScore        = 10
	safeNonSavingsBank    = 20
	safeSavingsBank       = 10
	aggressiveHighRate    = 20
	neutralRiskScore      = 15
	mobileChannelScore    = 10
	secondaryChannelScore = 5
)

// Fallback capacities when a profile carries no usable amounts
const (
	fallbackPrincipal       int64 = 1_000_000
	fallbackMonthlyCapacity int64 = 200_000
)

// highRateThreshold marks the preferential rate worth calling out in
// recommendation reasons; aggressiveRateThreshold is the floor for the
// aggressive-profile rate bonus.
var (
	highRateThreshold       = decimal.NewFromFloat(0.05)
	aggressiveRateThreshold = decimal.NewFromFloat(0.04)
)

// scoreConditionKeywords mark preferential conditions a typical user can
// meet without effort; reasonConditionKeywords is the narrower set quoted
// back in recommendation reasons
var (
	scoreConditionKeywords  = []string{"급여이체", "자동이체", "카드실적", "모바일", "앱", "결제", "페이", "첫거래"}
	reasonConditionKeywords = []string{"급여이체", "자동이체", "카드실적", "결제", "페이", "첫거래"}
)

type recommendationService struct {
	catalog CatalogServiceInterface
	metrics MetricsRecorderInterface
}

// NewRecommendationService creates a new RecommendationServiceInterface
// instance backed by the loaded product catalog
func NewRecommendationService(catalog CatalogServiceInterface, metrics MetricsRecorderInterface) RecommendationServiceInterface {
	return &recommendationService{catalog: catalog, metrics: metrics}
}

// DeriveProfile condenses the analysis input into the scoring profile.
// Risk resolution order: an explicit preference wins, then more than two
// risk patterns force aggressive, then a stable spending type maps to
// safe, otherwise moderate.
func (s *recommendationService) DeriveProfile(input models.RecommendationInput) models.UserProfile {
	var potential int64
	for _, plan := range input.SavingPlans {
		if plan.ExpectedSaving > potential {
			potential = plan.ExpectedSaving
		}
	}

	var spendingRatio float64
	if input.MonthlyIncome > 0 {
		spendingRatio = float64(input.TotalSpent) / float64(input.MonthlyIncome)
	}

	risk := models.RiskModerate
	if pref, ok := models.ParseRiskPreference(input.RiskPreference); ok {
		risk = pref
	} else if len(input.RiskPatterns) > 2 {
		risk = models.RiskAggressive
	} else if input.SpendingType == models.SpendingTypeStable {
		risk = models.RiskSafe
	}

	goals := input.FinancialGoals
	if goals == nil {
		goals = []string{}
	}

	return models.UserProfile{
		TotalSpent:      input.TotalSpent,
		SavingPotential: potential,
		SpendingRatio:   spendingRatio,
		RiskLevel:       risk,
		MonthlyIncome:   input.MonthlyIncome,
		CurrentSavings:  input.CurrentSavings,
		FinancialGoals:  goals,
	}
}

// Recommend scores every active catalog product against the derived
// profile and assembles the full recommendation payload
func (s *recommendationService) Recommend(input models.RecommendationInput) models.RecommendationResult {
	profile := s.DeriveProfile(input)

	deposits := s.recommendDeposits(profile)
	savings := s.recommendSavings(profile)

	var totalBenefit int64
	for _, d := range deposits {
		totalBenefit += d.ExpectedInterest
	}
	for _, sv := range savings {
		totalBenefit += sv.ExpectedInterest
	}

	return models.RecommendationResult{
		UserProfileAnalysis:  profileAnalysisText(profile),
		TimeDeposits:         deposits,
		Savings:              savings,
		PortfolioSuggestion:  portfolioSuggestion(profile.RiskLevel),
		TotalExpectedBenefit: totalBenefit,
		InvestmentStrategy:   investmentStrategyText(profile, totalBenefit),
		Cautions:             standardCautions(),
	}
}

func (s *recommendationService) recommendDeposits(profile models.UserProfile) []models.RecommendedTimeDeposit {
	available := depositPrincipal(profile)

	picks := make([]models.RecommendedTimeDeposit, 0, topPicksPerCatalog)
	for _, product := range s.catalog.TimeDeposits() {
		if product.SaleStatus != models.SaleStatusActive {
			continue
		}
		if available < product.MinJoinAmount {
			continue
		}

		score := scoreDeposit(product, profile)
		if score <= minRecommendationScore {
			continue
		}
		if s.metrics != nil {
			s.metrics.RecordRecommendationScore(score)
		}

		amount := available
		if product.SuggestedAmount > 0 && product.SuggestedAmount < amount {
			amount = product.SuggestedAmount
		}

		picks = append(picks, models.RecommendedTimeDeposit{
			Product:           product,
			Score:             score,
			RecommendedAmount: amount,
			ExpectedInterest:  depositInterest(amount, product.PreTaxPreferentialTotal, product.TermMonths),
			Reasons:           depositReasons(product),
			FitAnalysis:       depositFitText(product, profile, amount),
		})
	}

	sort.SliceStable(picks, func(i, j int) bool {
		return picks[i].Score > picks[j].Score
	})
	if len(picks) > topPicksPerCatalog {
		picks = picks[:topPicksPerCatalog]
	}
	return picks
}

func (s *recommendationService) recommendSavings(profile models.UserProfile) []models.RecommendedSaving {
	monthly := monthlyCapacity(profile)

	picks := make([]models.RecommendedSaving, 0, topPicksPerCatalog)
	for _, product := range s.catalog.SavingProducts() {
		if product.SaleStatus != models.SaleStatusActive {
			continue
		}
		if monthly < product.MinMonthlyDeposit {
			continue
		}

		score := scoreSaving(product, profile, monthly)
		if score <= minRecommendationScore {
			continue
		}
		if s.metrics != nil {
			s.metrics.RecordRecommendationScore(score)
		}

		contribution := monthly
		if product.MaxMonthlyDeposit > 0 && product.MaxMonthlyDeposit < contribution {
			contribution = product.MaxMonthlyDeposit
		}
		months := product.DefaultTermMonths
		total := contribution * int64(months)

		picks = append(picks, models.RecommendedSaving{
			Product:                  product,
			Score:                    score,
			RecommendedMonthlyAmount: contribution,
			ExpectedTotalAmount:      total,
			ExpectedInterest:         savingInterest(contribution, total, product, months),
			Reasons:                  savingReasons(product),
			FitAnalysis:              savingFitText(product, profile, contribution),
		})
	}

	sort.SliceStable(picks, func(i, j int) bool {
		return picks[i].Score > picks[j].Score
	})
	if len(picks) > topPicksPerCatalog {
		picks = picks[:topPicksPerCatalog]
	}
	return picks
}

// depositPrincipal picks the first positive candidate: current savings,
// then saving potential, then the fixed fallback
func depositPrincipal(profile models.UserProfile) int64 {
	if profile.CurrentSavings > 0 {
		return profile.CurrentSavings
	}
	if profile.SavingPotential > 0 {
		return profile.SavingPotential
	}
	return fallbackPrincipal
}

// monthlyCapacity is one twelfth of the yearly saving potential, or the
// fixed fallback when no potential was derived
func monthlyCapacity(profile models.UserProfile) int64 {
	if profile.SavingPotential > 0 {
		return profile.SavingPotential / 12
	}
	return fallbackMonthlyCapacity
}

func scoreDeposit(product models.TimeDeposit, profile models.UserProfile) float64 {
	rate, _ := product.PreTaxPreferentialTotal.Float64()
	score := rate * rateScoreWeight

	score += riskScore(profile.RiskLevel, product.Vendor, product.PreTaxPreferentialTotal)

	if containsChannel(product.Channels, "모바일") {
		score += mobileChannelScore
	}
	if containsChannel(product.Channels, "인터넷") {
		score += secondaryChannelScore
	}

	score += conditionScore(product.PreferentialConditions)

	if profile.CurrentSavings >= product.MinJoinAmount {
		score += amountFitScore
	}

	return clampScore(score)
}

func scoreSaving(product models.InstallmentSaving, profile models.UserProfile, monthly int64) float64 {
	rate, _ := product.PreTaxPreferentialTotal.Float64()
	score := rate * rateScoreWeight

	score += riskScore(profile.RiskLevel, product.Vendor, product.PreTaxPreferentialTotal)

	joined := strings.Join(product.Channels, " ")
	if strings.Contains(joined, "인터넷뱅킹") || strings.Contains(joined, "모바일") {
		score += mobileChannelScore
	} else if !containsChannel(product.Channels, models.ChannelUnknown) {
		score += secondaryChannelScore
	}

	score += conditionScore(product.PreferentialConditions)

	if monthly >= product.MinMonthlyDeposit &&
		(product.MaxMonthlyDeposit == 0 || monthly <= product.MaxMonthlyDeposit) {
		score += amountFitScore
	}

	return clampScore(score)
}

// riskScore biases vendors by the user's risk posture: safe profiles
// prefer non-savings-bank vendors, aggressive profiles reward high rates
func riskScore(risk models.RiskLevel, vendor string, rate decimal.Decimal) float64 {
	switch risk {
	case models.RiskSafe:
		if strings.Contains(vendor, models.SavingsBankMarker) {
			return safeSavingsBank
		}
		return safeNonSavingsBank
	case models.RiskAggressive:
		if rate.GreaterThan(aggressiveRateThreshold) {
			return aggressiveHighRate
		}
		return neutralRiskScore
	default:
		return neutralRiskScore
	}
}

func conditionScore(conditions []string) float64 {
	count := 0
	for _, condition := range conditions {
		for _, keyword := range scoreConditionKeywords {
			if strings.Contains(condition, keyword) {
				count++
				break
			}
		}
	}
	return min(float64(count*conditionScorePoints), float64(conditionScoreCap))
}

func clampScore(score float64) float64 {
	return min(score, maxRecommendationScore)
}

func containsChannel(channels []string, channel string) bool {
	for _, c := range channels {
		if c == channel {
			return true
		}
	}
	return false
}

// depositInterest computes simple interest: principal * rate * term / 12
func depositInterest(principal int64, rate decimal.Decimal, termMonths int) int64 {
	return decimal.NewFromInt(principal).
		Mul(rate).
		Mul(decimal.NewFromInt(int64(termMonths))).
		Div(decimal.NewFromInt(12)).
		IntPart()
}

// savingInterest computes installment interest. Simple-interest products
// accrue on the full contributed total over the term; compounding
// products use the monthly annuity future value.
func savingInterest(monthly, total int64, product models.InstallmentSaving, months int) int64 {
	rate := product.PreTaxPreferentialTotal
	if product.InterestMethod == models.InterestMethodSimple || rate.IsZero() {
		return decimal.NewFromInt(total).
			Mul(rate).
			Mul(decimal.NewFromInt(int64(months))).
			Div(decimal.NewFromInt(12)).
			IntPart()
	}

	one := decimal.NewFromInt(1)
	monthlyRate := rate.Div(decimal.NewFromInt(12))
	growth := one.Add(monthlyRate).Pow(decimal.NewFromInt(int64(months)))
	futureValue := decimal.NewFromInt(monthly).
		Mul(growth.Sub(one)).
		Div(monthlyRate)
	return futureValue.Sub(decimal.NewFromInt(total)).IntPart()
}

func depositReasons(product models.TimeDeposit) []models.RecommendationReason {
	reasons := make([]models.RecommendationReason, 0, maxReasonsPerProduct)

	if product.PreTaxPreferentialTotal.GreaterThan(highRateThreshold) {
		rate, _ := product.PreTaxPreferentialTotal.Float64()
		reasons = append(reasons, models.RecommendationReason{
			Title:   "높은 금리 혜택",
			Detail:  fmt.Sprintf("최대 연 %.2f%%의 우대금리로 높은 수익 기대", rate*100),
			Benefit: "시중 평균보다 높은 금리로 안정적인 수익 창출 가능",
		})
	}

	if n := easyConditionCount(product.PreferentialConditions); n > 0 {
		reasons = append(reasons, models.RecommendationReason{
			Title:   "접근 가능한 우대 조건",
			Detail:  fmt.Sprintf("%d개의 우대 조건으로 추가 금리 혜택 가능", n),
			Benefit: "일상적인 금융 활동만으로 우대금리 달성 가능",
		})
	}

	if product.DepositProtected {
		reasons = append(reasons, models.RecommendationReason{
			Title:   "안전한 투자",
			Detail:  "예금보험공사 보호로 원금 보장",
			Benefit: "최대 5천만원까지 예금자 보호로 안전한 투자",
		})
	}

	if containsChannel(product.Channels, "모바일") {
		reasons = append(reasons, models.RecommendationReason{
			Title:   "편리한 모바일 가입",
			Detail:  "영업점 방문 없이 모바일로 간편하게 가입",
			Benefit: "시간과 장소에 구애받지 않는 편리한 가입 절차",
		})
	}

	if len(reasons) > maxReasonsPerProduct {
		reasons = reasons[:maxReasonsPerProduct]
	}
	return reasons
}

func savingReasons(product models.InstallmentSaving) []models.RecommendationReason {
	reasons := make([]models.RecommendationReason, 0, maxReasonsPerProduct)

	if product.PreTaxPreferentialTotal.GreaterThan(highRateThreshold) {
		rate, _ := product.PreTaxPreferentialTotal.Float64()
		reasons = append(reasons, models.RecommendationReason{
			Title:   "높은 금리 혜택",
			Detail:  fmt.Sprintf("최대 연 %.2f%%의 우대금리로 높은 수익 기대", rate*100),
			Benefit: "꾸준한 적립으로 높은 이자 수익 가능",
		})
	}

	if n := easyConditionCount(product.PreferentialConditions); n > 0 {
		reasons = append(reasons, models.RecommendationReason{
			Title:   "접근 가능한 우대 조건",
			Detail:  fmt.Sprintf("%d개의 우대 조건으로 추가 금리 혜택 가능", n),
			Benefit: "일상적인 금융 활동만으로 우대금리 달성 가능",
		})
	}

	reasons = append(reasons, models.RecommendationReason{
		Title:   "체계적 목돈 마련",
		Detail:  fmt.Sprintf("%s 방식으로 매월 일정액을 꾸준히 적립", product.AccrualType),
		Benefit: "저축 습관 형성과 함께 목돈 마련 가능",
	})

	if !containsChannel(product.Channels, models.ChannelUnknown) {
		reasons = append(reasons, models.RecommendationReason{
			Title:   "편리한 가입 절차",
			Detail:  fmt.Sprintf("%s을 통해 간편하게 가입", strings.Join(product.Channels, ", ")),
			Benefit: "번거로운 절차 없이 빠른 가입 가능",
		})
	}

	if len(reasons) > maxReasonsPerProduct {
		reasons = reasons[:maxReasonsPerProduct]
	}
	return reasons
}

// easyConditionCount counts preferential conditions matching the reason
// keyword set
func easyConditionCount(conditions []string) int {
	count := 0
	for _, condition := range conditions {
		for _, keyword := range reasonConditionKeywords {
			if strings.Contains(condition, keyword) {
				count++
				break
			}
		}
	}
	return count
}

func depositFitText(product models.TimeDeposit, profile models.UserProfile, amount int64) string {
	rate, _ := product.PreTaxPreferentialTotal.Float64()
	return fmt.Sprintf(
		"%s 성향의 고객님께 적합한 %d개월 만기 상품입니다. %s원 예치 시 연 %.2f%% 금리가 적용됩니다.",
		profile.RiskLevel.Korean(), product.TermMonths, formatWon(amount), rate*100)
}

func savingFitText(product models.InstallmentSaving, profile models.UserProfile, monthly int64) string {
	rate, _ := product.PreTaxPreferentialTotal.Float64()
	return fmt.Sprintf(
		"월 %s원씩 %d개월 납입하는 %s 성향 맞춤 적금입니다. 연 %.2f%% 금리가 적용됩니다.",
		formatWon(monthly), product.DefaultTermMonths, profile.RiskLevel.Korean(), rate*100)
}

func profileAnalysisText(profile models.UserProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "월 지출 %s원, 절약 가능액 %s원으로 분석되었습니다. ",
		formatWon(profile.TotalSpent), formatWon(profile.SavingPotential))
	if profile.MonthlyIncome > 0 {
		fmt.Fprintf(&b, "소득 대비 지출 비율은 %.1f%%입니다. ", profile.SpendingRatio*100)
	}
	fmt.Fprintf(&b, "투자 성향은 %s형으로 판단됩니다.", profile.RiskLevel.Korean())
	return b.String()
}

// portfolioSuggestion splits the deposit/savings allocation by risk
// posture: 70/30 safe, 60/40 aggressive, 50/50 moderate
func portfolioSuggestion(risk models.RiskLevel) string {
	switch risk {
	case models.RiskSafe:
		return "안전 성향에 맞춰 예금 70%, 적금 30% 배분을 추천합니다. 원금 보장 상품 중심으로 안정적인 수익을 확보하세요."
	case models.RiskAggressive:
		return "적극 성향에 맞춰 예금 60%, 적금 40% 배분을 추천합니다. 고금리 상품을 활용해 수익을 극대화하세요."
	default:
		return "보통 성향에 맞춰 예금 50%, 적금 50% 배분을 추천합니다. 안정성과 수익성의 균형을 유지하세요."
	}
}

func investmentStrategyText(profile models.UserProfile, totalBenefit int64) string {
	base := profile.SavingPotential
	if base < fallbackPrincipal {
		base = fallbackPrincipal
	}
	yieldPct := float64(totalBenefit) / float64(base) * 100
	return fmt.Sprintf(
		"추천 상품 가입 시 총 %s원의 이자 수익이 예상됩니다 (투자 원금 대비 약 %.2f%%). 절약으로 확보한 여유 자금을 먼저 예치하고, 매월 절약액을 적금으로 전환하는 전략을 추천합니다.",
		formatWon(totalBenefit), yieldPct)
}

func standardCautions() []string {
	return []string{
		"우대금리는 조건 충족 시에만 적용되므로 가입 전 세부 조건을 확인하세요.",
		"중도해지 시 약정 금리보다 낮은 중도해지 이율이 적용됩니다.",
		"예금자 보호는 금융회사별 원금과 이자를 합쳐 최대 5천만원까지입니다.",
		"금리는 시장 상황에 따라 변동될 수 있으니 가입 시점의 고시 금리를 확인하세요.",
	}
}
