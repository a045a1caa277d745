package services

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"fincoach/internal/config"
	"fincoach/internal/models"
)

type savingService struct{}

// NewSavingService creates a new SavingServiceInterface instance
func NewSavingService() SavingServiceInterface {
	return &savingService{}
}

// GeneratePlans builds all three tiers from a category breakdown. Every
// tier key is always present; a tier with no qualifying category carries
// an empty strategy list and zero expected saving.
func (s *savingService) GeneratePlans(breakdown models.CategoryBreakdown, totalSpent int64) models.SavingPlans {
	plans := make(models.SavingPlans, 3)
	for _, level := range config.SavingLevels() {
		plans[level] = s.generatePlan(level, breakdown)
	}
	return plans
}

// Summarize condenses each plan for overview displays
func (s *savingService) Summarize(plans models.SavingPlans) map[config.SavingLevel]models.LevelSummary {
	summaries := make(map[config.SavingLevel]models.LevelSummary, len(plans))
	for level, plan := range plans {
		summary := models.LevelSummary{
			TotalSaving:   plan.ExpectedSaving,
			CategoryCount: len(plan.Strategies),
		}
		if len(plan.Strategies) > 0 {
			scoreSum := 0
			for _, st := range plan.Strategies {
				scoreSum += st.Difficulty.Score()
			}
			summary.AvgDifficulty = models.DifficultyFromScore(
				float64(scoreSum) / float64(len(plan.Strategies)))
			// strategies are already ranked, the first is the headline
			summary.TopCategory = plan.Strategies[0].Category
		}
		summaries[level] = summary
	}
	return summaries
}

func (s *savingService) generatePlan(level config.SavingLevel, breakdown models.CategoryBreakdown) models.SavingPlan {
	rules := config.SavingLevelRules[level]
	ranked := rankCategories(filterCategories(rules, breakdown))
	if len(ranked) > rules.MaxStrategies {
		ranked = ranked[:rules.MaxStrategies]
	}

	strategies := make([]models.SavingStrategy, 0, len(ranked))
	var totalSaving int64
	for _, rc := range ranked {
		strategy := buildStrategy(level, rules, rc.name, rc.stat)
		strategies = append(strategies, strategy)
		totalSaving += strategy.SavingAmount
	}

	return models.SavingPlan{
		Level:          rules.DisplayName,
		Description:    rules.Description,
		ExpectedSaving: totalSaving,
		ReductionRate:  fmt.Sprintf("%d-%d%%", int(rules.MinReduction*100), int(rules.MaxReduction*100)),
		Strategies:     strategies,
	}
}

type rankedCategory struct {
	name string
	stat models.CategoryStat
}

// filterCategories drops excluded categories and those below the tier's
// qualifying spend floor
func filterCategories(rules config.LevelRules, breakdown models.CategoryBreakdown) []rankedCategory {
	out := make([]rankedCategory, 0, len(breakdown))
	for name, stat := range breakdown {
		if rules.ExcludedCategories[name] {
			continue
		}
		if stat.Amount < rules.MinQualifyingAmount {
			continue
		}
		out = append(out, rankedCategory{name, stat})
	}
	return out
}

// rankCategories orders by priority score, then spend, then name so the
// selection is deterministic across runs
func rankCategories(categories []rankedCategory) []rankedCategory {
	sort.SliceStable(categories, func(i, j int) bool {
		pi := config.CategoryPriorityScores[categories[i].name]
		pj := config.CategoryPriorityScores[categories[j].name]
		if pi != pj {
			return pi > pj
		}
		if categories[i].stat.Amount != categories[j].stat.Amount {
			return categories[i].stat.Amount > categories[j].stat.Amount
		}
		return categories[i].name < categories[j].name
	})
	return categories
}

func buildStrategy(level config.SavingLevel, rules config.LevelRules, category string, stat models.CategoryStat) models.SavingStrategy {
	rate := reductionRate(level, rules, category, stat.TransactionCount)
	saving := int64(float64(stat.Amount) * rate)

	return models.SavingStrategy{
		Category:      category,
		CurrentAmount: stat.Amount,
		TargetAmount:  stat.Amount - saving,
		SavingAmount:  saving,
		Method:        methodText(level, rules, category, stat, saving),
		Difficulty:    difficultyFor(level, category, stat.Amount),
	}
}

// reductionRate picks the tier's bound for a category: fixed costs get
// the maximum under the aggressive tier, habitual high-frequency spends
// get the midpoint, everything else the conservative minimum
func reductionRate(level config.SavingLevel, rules config.LevelRules, category string, count int) float64 {
	if config.FixedCostCategories[category] && level == config.LevelAggressive {
		return rules.MaxReduction
	}
	if config.FrequentCategories[category] && count > config.FrequentCountThreshold {
		return (rules.MinReduction + rules.MaxReduction) / 2
	}
	return rules.MinReduction
}

func difficultyFor(level config.SavingLevel, category string, amount int64) models.Difficulty {
	if config.FixedCostCategories[category] {
		if level == config.LevelAggressive {
			return models.DifficultyHigh
		}
		return models.DifficultyMedium
	}
	if amount > config.LargeSpendThreshold {
		if level == config.LevelAggressive {
			return models.DifficultyHigh
		}
		return models.DifficultyMedium
	}
	if level == config.LevelLight {
		return models.DifficultyLow
	}
	return models.DifficultyMedium
}

var placeholderPattern = regexp.MustCompile(`\{[a-z_]+\}`)

// methodText renders the per-(category, tier) template. Count-derived
// placeholders are computed only when the template references them, and
// any unresolved placeholder degrades to the generic fallback line.
func methodText(level config.SavingLevel, rules config.LevelRules, category string, stat models.CategoryStat, saving int64) string {
	templates, ok := config.SavingMethodTemplates[category]
	if !ok {
		return fallbackMethod(category, saving)
	}
	tpl, ok := templates[level]
	if !ok {
		return fallbackMethod(category, saving)
	}

	values := map[string]string{
		"{amount}": formatWon(saving),
	}

	currentCount, targetCount := 1, 1
	if strings.Contains(tpl, "{current_count}") {
		currentCount = max(1, stat.TransactionCount/4)
		values["{current_count}"] = strconv.Itoa(currentCount)
	}
	if strings.Contains(tpl, "{target_count}") {
		targetCount = max(1, int(float64(currentCount)*(1-rules.MinReduction)))
		values["{target_count}"] = strconv.Itoa(targetCount)
	}
	if strings.Contains(tpl, "{reduce_count}") {
		values["{reduce_count}"] = strconv.Itoa(max(1, currentCount-targetCount))
	}
	if strings.Contains(tpl, "{unused_count}") {
		values["{unused_count}"] = strconv.Itoa(min(3, max(1, stat.TransactionCount/10)))
	}
	if strings.Contains(tpl, "{downgrade_count}") {
		values["{downgrade_count}"] = strconv.Itoa(min(2, max(1, stat.TransactionCount/15)))
	}
	if strings.Contains(tpl, "{budget}") {
		values["{budget}"] = formatWon(int64(float64(stat.Amount) * 0.7))
	}

	unresolved := false
	rendered := placeholderPattern.ReplaceAllStringFunc(tpl, func(ph string) string {
		v, ok := values[ph]
		if !ok {
			unresolved = true
			return ph
		}
		return v
	})
	if unresolved {
		return fallbackMethod(category, saving)
	}
	return rendered
}

func fallbackMethod(category string, saving int64) string {
	return fmt.Sprintf("%s에서 월 %s원 절약 가능", category, formatWon(saving))
}
