package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"fincoach/internal/config"
	"fincoach/internal/models"
)

type SavingServiceTestSuite struct {
	suite.Suite
	saving SavingServiceInterface
}

func (s *SavingServiceTestSuite) SetupTest() {
	s.saving = NewSavingService()
}

func TestSavingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SavingServiceTestSuite))
}

func breakdown(entries map[string]models.CategoryStat) models.CategoryBreakdown {
	b := make(models.CategoryBreakdown, len(entries))
	for k, v := range entries {
		b[k] = v
	}
	return b
}

func (s *SavingServiceTestSuite) TestGeneratePlans_AllTiersAlwaysPresent() {
	plans := s.saving.GeneratePlans(breakdown(nil), 0)

	s.Require().Len(plans, 3)
	for _, level := range config.SavingLevels() {
		plan, ok := plans[level]
		s.Require().True(ok, "missing tier %s", level)
		s.Empty(plan.Strategies)
		s.Zero(plan.ExpectedSaving)
		s.NotEmpty(plan.Description)
	}
}

func (s *SavingServiceTestSuite) TestGeneratePlans_FixedCostMaxBoundUnderAggressive() {
	plans := s.saving.GeneratePlans(breakdown(map[string]models.CategoryStat{
		"구독서비스": {Amount: 45000, TransactionCount: 5},
	}), 45000)

	plan := plans[config.LevelAggressive]
	s.Require().Len(plan.Strategies, 1)

	st := plan.Strategies[0]
	s.Equal("구독서비스", st.Category)
	s.EqualValues(18000, st.SavingAmount) // 45000 * 0.40
	s.EqualValues(27000, st.TargetAmount)
	s.EqualValues(45000, st.CurrentAmount)
	s.Equal(models.DifficultyHigh, st.Difficulty)
	s.Equal("25-40%", plan.ReductionRate)
}

func (s *SavingServiceTestSuite) TestGeneratePlans_ModerateExcludesProtectedCategories() {
	plans := s.saving.GeneratePlans(breakdown(map[string]models.CategoryStat{
		"주거/통신": {Amount: 120000, TransactionCount: 2},
		"의료/건강": {Amount: 80000, TransactionCount: 1},
		"배달음식":  {Amount: 60000, TransactionCount: 6},
	}), 260000)

	moderate := plans[config.LevelModerate]
	s.Require().Len(moderate.Strategies, 1)
	s.Equal("배달음식", moderate.Strategies[0].Category)

	aggressive := plans[config.LevelAggressive]
	s.Len(aggressive.Strategies, 3, "aggressive tier has no exclusions")
}

func (s *SavingServiceTestSuite) TestGeneratePlans_QualifyingThresholdPerTier() {
	plans := s.saving.GeneratePlans(breakdown(map[string]models.CategoryStat{
		"카페/간식": {Amount: 7000, TransactionCount: 3},
	}), 7000)

	// 7000 passes the light tier floor of 5000 but not the 10000 floor
	s.Empty(plans[config.LevelAggressive].Strategies)
	s.Empty(plans[config.LevelModerate].Strategies)
	s.Require().Len(plans[config.LevelLight].Strategies, 1)
	s.EqualValues(350, plans[config.LevelLight].Strategies[0].SavingAmount) // 7000 * 0.05
}

func (s *SavingServiceTestSuite) TestGeneratePlans_SelectionCapAndPriorityOrder() {
	plans := s.saving.GeneratePlans(breakdown(map[string]models.CategoryStat{
		"배달음식":     {Amount: 100000, TransactionCount: 8},
		"온라인쇼핑":    {Amount: 90000, TransactionCount: 4},
		"카페/간식":    {Amount: 50000, TransactionCount: 9},
		"취미/여가":    {Amount: 60000, TransactionCount: 3},
		"구독서비스":    {Amount: 40000, TransactionCount: 4},
		"편의점/마트/잡화": {Amount: 30000, TransactionCount: 7},
	}), 370000)

	aggressive := plans[config.LevelAggressive]
	s.Require().Len(aggressive.Strategies, 5)
	s.Equal("배달음식", aggressive.Strategies[0].Category)
	s.Equal("온라인쇼핑", aggressive.Strategies[1].Category)

	moderate := plans[config.LevelModerate]
	s.Len(moderate.Strategies, 3)
}

func (s *SavingServiceTestSuite) TestGeneratePlans_PriorityTieBrokenByAmount() {
	// both categories share priority score 7
	plans := s.saving.GeneratePlans(breakdown(map[string]models.CategoryStat{
		"카페/간식": {Amount: 30000, TransactionCount: 5},
		"취미/여가": {Amount: 80000, TransactionCount: 2},
	}), 110000)

	light := plans[config.LevelLight]
	s.Require().NotEmpty(light.Strategies)
	s.Equal("취미/여가", light.Strategies[0].Category)
}

func (s *SavingServiceTestSuite) TestGeneratePlans_FrequentCategoryMidpointRate() {
	plans := s.saving.GeneratePlans(breakdown(map[string]models.CategoryStat{
		"카페/간식": {Amount: 100000, TransactionCount: 12},
	}), 100000)

	moderate := plans[config.LevelModerate]
	s.Require().Len(moderate.Strategies, 1)
	// frequency above 10 moves the rate to the tier midpoint (15+25)/2 = 20%
	s.EqualValues(20000, moderate.Strategies[0].SavingAmount)
}

func (s *SavingServiceTestSuite) TestGeneratePlans_MethodTemplatesFullyResolved() {
	plans := s.saving.GeneratePlans(breakdown(map[string]models.CategoryStat{
		"구독서비스":    {Amount: 45000, TransactionCount: 32},
		"배달음식":     {Amount: 80000, TransactionCount: 12},
		"카페/간식":    {Amount: 50000, TransactionCount: 20},
		"취미/여가":    {Amount: 60000, TransactionCount: 3},
		"편의점/마트/잡화": {Amount: 30000, TransactionCount: 7},
	}), 265000)

	for level, plan := range plans {
		for _, st := range plan.Strategies {
			s.NotContains(st.Method, "{", "unresolved placeholder in %s/%s: %s", level, st.Category, st.Method)
			s.NotEmpty(st.Method)
		}
	}
}

func (s *SavingServiceTestSuite) TestGeneratePlans_SubscriptionMethodCounts() {
	plans := s.saving.GeneratePlans(breakdown(map[string]models.CategoryStat{
		"구독서비스": {Amount: 45000, TransactionCount: 32},
	}), 45000)

	method := plans[config.LevelAggressive].Strategies[0].Method
	// 32 transactions: unused = min(3, 32/10) = 3, downgrade = min(2, 32/15) = 2
	s.Contains(method, "3개 해지")
	s.Contains(method, "2개 다운그레이드")
	s.Contains(method, "18,000원")
}

func (s *SavingServiceTestSuite) TestGeneratePlans_UnknownCategoryFallbackMethod() {
	plans := s.saving.GeneratePlans(breakdown(map[string]models.CategoryStat{
		"술/유흥": {Amount: 90000, TransactionCount: 4},
	}), 90000)

	aggressive := plans[config.LevelAggressive]
	s.Require().Len(aggressive.Strategies, 1)
	method := aggressive.Strategies[0].Method
	s.True(strings.Contains(method, "술/유흥"), method)
	s.Contains(method, "절약 가능")
}

func (s *SavingServiceTestSuite) TestGeneratePlans_ExpectedSavingSumsStrategies() {
	plans := s.saving.GeneratePlans(breakdown(map[string]models.CategoryStat{
		"배달음식":  {Amount: 100000, TransactionCount: 8},
		"온라인쇼핑": {Amount: 50000, TransactionCount: 3},
	}), 150000)

	for _, plan := range plans {
		var sum int64
		for _, st := range plan.Strategies {
			sum += st.SavingAmount
			s.GreaterOrEqual(st.TargetAmount, int64(0))
			s.LessOrEqual(st.SavingAmount, st.CurrentAmount)
		}
		s.Equal(sum, plan.ExpectedSaving)
	}
}

func (s *SavingServiceTestSuite) TestSummarize_TopCategoryIsFirstRanked() {
	// 배달음식 outranks 구독서비스 on priority even though the
	// subscription strategy saves far more
	plans := s.saving.GeneratePlans(breakdown(map[string]models.CategoryStat{
		"배달음식":  {Amount: 20000, TransactionCount: 2},
		"구독서비스": {Amount: 200000, TransactionCount: 5},
	}), 220000)

	agg := plans[config.LevelAggressive]
	s.Require().Len(agg.Strategies, 2)
	s.Equal("배달음식", agg.Strategies[0].Category)
	s.Greater(agg.Strategies[1].SavingAmount, agg.Strategies[0].SavingAmount)

	summaries := s.saving.Summarize(plans)
	s.Equal("배달음식", summaries[config.LevelAggressive].TopCategory)
}

func (s *SavingServiceTestSuite) TestSummarize() {
	plans := s.saving.GeneratePlans(breakdown(map[string]models.CategoryStat{
		"배달음식":  {Amount: 100000, TransactionCount: 8},
		"카페/간식": {Amount: 40000, TransactionCount: 5},
	}), 140000)

	summaries := s.saving.Summarize(plans)
	s.Require().Len(summaries, 3)

	agg := summaries[config.LevelAggressive]
	s.Equal(plans[config.LevelAggressive].ExpectedSaving, agg.TotalSaving)
	s.Equal(len(plans[config.LevelAggressive].Strategies), agg.CategoryCount)
	s.Equal("배달음식", agg.TopCategory)
	s.NotEmpty(agg.AvgDifficulty)
}
