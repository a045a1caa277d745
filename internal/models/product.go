package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Catalog field values carried verbatim from the product data feeds
const (
	SaleStatusActive     = "판매중"
	InterestMethodSimple = "단리"
	ChannelUnknown       = "미확인"
	SavingsBankMarker    = "저축은행"
)

// TimeDeposit is one fixed-term deposit product from the catalog feed.
// JSON tags follow the feed's Korean field names.
type TimeDeposit struct {
	Vendor                   string          `json:"금융회사"`
	Name                     string          `json:"상품명"`
	TermMonths               int             `json:"기간개월"`
	RateType                 string          `json:"금리유형"`
	InterestPayout           string          `json:"이자지급주기"`
	InterestMethod           string          `json:"이자계산방식"`
	BaseRate                 decimal.Decimal `json:"세전이자율_num"`
	PostTaxRate              decimal.Decimal `json:"세후이자율_num"`
	TopPreferentialRate      decimal.Decimal `json:"최고우대금리_num"`
	PreTaxPreferentialTotal  decimal.Decimal `json:"세전우대합계_num"`
	PostTaxPreferentialTotal decimal.Decimal `json:"세후우대합계_num"`
	PreferentialConditions   []string        `json:"우대금리세부내역"`
	MinJoinAmount            int64           `json:"최소가입금액"`
	SuggestedAmount          int64           `json:"권장예치금액"`
	DepositProtected         bool            `json:"예금자보호여부"`
	Protector                string          `json:"보호기관"`
	ProtectionLimit          int64           `json:"보호한도"`
	Channels                 []string        `json:"가입채널"`
	Eligibility              string          `json:"가입대상"`
	SaleStatus               string          `json:"판매상태"`
	TaxBenefit               string          `json:"세제혜택"`
}

// InstallmentSaving is one installment-savings product from the catalog
// feed.
type InstallmentSaving struct {
	Vendor                   string          `json:"금융회사"`
	Name                     string          `json:"상품명"`
	AccrualType              string          `json:"적립방식"`
	BaseRate                 decimal.Decimal `json:"세전이자율_num"`
	PostTaxRate              decimal.Decimal `json:"세후이자율_num"`
	PreTaxPreferentialTotal  decimal.Decimal `json:"세전우대합계_num"`
	PostTaxPreferentialTotal decimal.Decimal `json:"세후우대합계_num"`
	ExamplePostTaxInterest   *int64          `json:"세후이자_예시,omitempty"`
	DefaultTermMonths        int             `json:"기간개월_기본"`
	TermRates                json.RawMessage `json:"기간별이자율,omitempty"`
	MinMonthlyDeposit        int64           `json:"최소월적립액"`
	MaxMonthlyDeposit        int64           `json:"최대월적립액"`
	MaxTotalAmount           int64           `json:"최대가입금액"`
	Channels                 []string        `json:"가입채널"`
	Eligibility              string          `json:"가입대상"`
	PreferentialConditions   []string        `json:"우대금리세부내역"`
	InterestMethod           string          `json:"이자계산방식"`
	InterestPayout           string          `json:"이자지급주기"`
	EarlyTerminationRate     decimal.Decimal `json:"중도해지이율_num"`
	AutoRenew                bool            `json:"자동재예치"`
	SaleStatus               string          `json:"판매상태"`
}

// ProductCatalog is the immutable pair of product lists loaded once at
// startup; concurrent recommendation requests read it without locking.
type ProductCatalog struct {
	TimeDeposits   []TimeDeposit
	SavingProducts []InstallmentSaving
}

// RecommendationReason explains one scoring dimension to the user
type RecommendationReason struct {
	Title         string `json:"reason_title"`
	Detail        string `json:"reason_detail"`
	BenefitAmount *int64 `json:"benefit_amount,omitempty"`
	Benefit       string `json:"benefit_description"`
}

// RecommendedTimeDeposit is one scored deposit pick
type RecommendedTimeDeposit struct {
	Product           TimeDeposit            `json:"product"`
	Score             float64                `json:"recommendation_score"`
	RecommendedAmount int64                  `json:"recommended_amount"`
	ExpectedInterest  int64                  `json:"expected_interest"`
	Reasons           []RecommendationReason `json:"reasons"`
	FitAnalysis       string                 `json:"fit_analysis"`
}

// RecommendedSaving is one scored installment-savings pick
type RecommendedSaving struct {
	Product                  InstallmentSaving      `json:"product"`
	Score                    float64                `json:"recommendation_score"`
	RecommendedMonthlyAmount int64                  `json:"recommended_monthly_amount"`
	ExpectedTotalAmount      int64                  `json:"expected_total_amount"`
	ExpectedInterest         int64                  `json:"expected_interest"`
	Reasons                  []RecommendationReason `json:"reasons"`
	FitAnalysis              string                 `json:"fit_analysis"`
}

// RecommendationResult is the complete recommendation response payload
type RecommendationResult struct {
	UserProfileAnalysis  string                   `json:"user_profile_analysis"`
	TimeDeposits         []RecommendedTimeDeposit `json:"recommended_time_deposits"`
	Savings              []RecommendedSaving      `json:"recommended_savings"`
	PortfolioSuggestion  string                   `json:"portfolio_suggestion"`
	TotalExpectedBenefit int64                    `json:"total_expected_benefit"`
	InvestmentStrategy   string                   `json:"investment_strategy"`
	Cautions             []string                 `json:"cautions"`
}
