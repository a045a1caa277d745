package services

import (
	"fmt"
	"sort"

	"fincoach/internal/config"
	"fincoach/internal/models"
)

const topExpenseCount = 5

type aggregationService struct{}

// NewAggregationService creates a new AggregationServiceInterface instance
func NewAggregationService() AggregationServiceInterface {
	return &aggregationService{}
}

// Aggregate folds classified transactions into the spend breakdown, top
// expenses and risk pattern view. An empty input yields a zero analysis
// with empty collections, never nil maps.
func (s *aggregationService) Aggregate(txs []models.ClassifiedTransaction) models.SpendingAnalysis {
	breakdown := make(models.CategoryBreakdown)
	var total int64
	for _, tx := range txs {
		total += tx.Amount
		category := primaryCategory(tx)
		stat := breakdown[category]
		stat.Amount += tx.Amount
		stat.TransactionCount++
		breakdown[category] = stat
	}

	for category, stat := range breakdown {
		if total > 0 {
			stat.Ratio = float64(stat.Amount) / float64(total)
		}
		if stat.TransactionCount > 0 {
			stat.AvgAmount = stat.Amount / int64(stat.TransactionCount)
		}
		breakdown[category] = stat
	}

	var avg int64
	if len(txs) > 0 {
		avg = total / int64(len(txs))
	}

	risks := detectRiskPatterns(txs)
	return models.SpendingAnalysis{
		TotalSpent:             total,
		CategoryBreakdown:      breakdown,
		AvgTransaction:         avg,
		TopExpenses:            topExpenses(txs),
		SpendingType:           spendingType(risks, breakdown),
		RiskPatterns:           risks,
		OverspendingCategories: overspendingCategories(txs),
	}
}

// primaryCategory resolves the breakdown key for a transaction: the
// highest-priority keyword hint when one matched, otherwise the caller's
// own category label, otherwise the fallback bucket.
func primaryCategory(tx models.ClassifiedTransaction) string {
	best := ""
	bestScore := -1
	for _, hint := range tx.KeywordHints {
		score := config.CategoryPriorityScores[hint]
		if score > bestScore {
			best = hint
			bestScore = score
		}
	}
	if best != "" {
		return best
	}
	if tx.Category != "" {
		return tx.Category
	}
	return config.TimeBucketOther
}

func topExpenses(txs []models.ClassifiedTransaction) []models.TopExpense {
	sorted := make([]models.ClassifiedTransaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount > sorted[j].Amount
	})

	limit := topExpenseCount
	if len(sorted) < limit {
		limit = len(sorted)
	}
	top := make([]models.TopExpense, 0, limit)
	for _, tx := range sorted[:limit] {
		top = append(top, models.TopExpense{
			Merchant: tx.Merchant,
			Amount:   tx.Amount,
			Category: primaryCategory(tx),
		})
	}
	return top
}

// detectRiskPatterns applies the configured thresholds over the window:
// dawn activity, large single payments, delivery and subscription volume
func detectRiskPatterns(txs []models.ClassifiedTransaction) []string {
	rules := config.RiskPatternRules

	dawnCount := 0
	var dawnAmount int64
	deliveryCount := 0
	subscriptionCount := 0
	var largest int64
	largestMerchant := ""

	for _, tx := range txs {
		if rules.DawnBuckets[tx.TimeBucket] {
			dawnCount++
			dawnAmount += tx.Amount
		}
		if tx.Amount > largest {
			largest = tx.Amount
			largestMerchant = tx.Merchant
		}
		for _, hint := range tx.KeywordHints {
			switch hint {
			case rules.DeliveryCategory:
				deliveryCount++
			case rules.SubscriptionCategory:
				subscriptionCount++
			}
		}
	}

	patterns := make([]string, 0, 4)
	if dawnCount >= rules.DawnCountThreshold {
		patterns = append(patterns, fmt.Sprintf(
			"심야/새벽 시간대 소비 %d건, 총 %s원", dawnCount, formatWon(dawnAmount)))
	}
	if largest >= rules.HighAmountThreshold {
		patterns = append(patterns, fmt.Sprintf(
			"%s원 이상 고액 결제 발생 (%s, %s원)",
			formatWon(rules.HighAmountThreshold), largestMerchant, formatWon(largest)))
	}
	if deliveryCount >= rules.DeliveryThreshold {
		patterns = append(patterns, fmt.Sprintf("배달음식 이용 %d건으로 빈번", deliveryCount))
	}
	if subscriptionCount >= rules.SubscriptionThreshold {
		patterns = append(patterns, fmt.Sprintf("구독서비스 결제 %d건으로 과다", subscriptionCount))
	}
	return patterns
}

// overspendingCategories returns hint categories whose hinted spend
// exceeds the configured share of all hinted spend, largest first.
// Transactions without a keyword hint stay out of the denominator.
func overspendingCategories(txs []models.ClassifiedTransaction) []string {
	hinted := make(map[string]int64)
	var hintedTotal int64
	for _, tx := range txs {
		for _, hint := range tx.KeywordHints {
			hinted[hint] += tx.Amount
			hintedTotal += tx.Amount
		}
	}
	if hintedTotal <= 0 {
		return []string{}
	}

	type categorySpend struct {
		name   string
		amount int64
	}
	over := make([]categorySpend, 0, len(hinted))
	threshold := config.RiskPatternRules.OverspendRatio
	for name, amount := range hinted {
		if float64(amount)/float64(hintedTotal) > threshold {
			over = append(over, categorySpend{name, amount})
		}
	}
	sort.Slice(over, func(i, j int) bool {
		if over[i].amount != over[j].amount {
			return over[i].amount > over[j].amount
		}
		return over[i].name < over[j].name
	})

	names := make([]string, 0, len(over))
	for _, c := range over {
		names = append(names, c.name)
	}
	return names
}

// spendingType labels the window: stable when nothing stands out,
// concentrated when one category dominates, cautionary when risk
// patterns fired
func spendingType(risks []string, breakdown models.CategoryBreakdown) string {
	if len(risks) > 0 {
		return "주의형"
	}
	for _, stat := range breakdown {
		if stat.Ratio > 0.4 {
			return "편중형"
		}
	}
	return models.SpendingTypeStable
}
