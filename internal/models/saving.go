package models

import "fincoach/internal/config"

// Difficulty grades how hard a saving strategy is to execute
type Difficulty string

const (
	DifficultyLow    Difficulty = "low"
	DifficultyMedium Difficulty = "medium"
	DifficultyHigh   Difficulty = "high"
)

// Score maps a difficulty to its numeric weight for averaging
func (d Difficulty) Score() int {
	switch d {
	case DifficultyLow:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHigh:
		return 3
	default:
		return 0
	}
}

// DifficultyFromScore re-buckets an averaged difficulty score
func DifficultyFromScore(avg float64) Difficulty {
	switch {
	case avg <= 1.5:
		return DifficultyLow
	case avg <= 2.5:
		return DifficultyMedium
	default:
		return DifficultyHigh
	}
}

// SavingStrategy is one concrete cut within a saving plan.
// SavingAmount never exceeds CurrentAmount and TargetAmount is never
// negative.
type SavingStrategy struct {
	Category      string     `json:"category"`
	CurrentAmount int64      `json:"current_amount"`
	TargetAmount  int64      `json:"target_amount"`
	SavingAmount  int64      `json:"saving_amount"`
	Method        string     `json:"method"`
	Difficulty    Difficulty `json:"difficulty"`
}

// SavingPlan is the full suggestion for one tier
type SavingPlan struct {
	Level          string           `json:"level"`
	Description    string           `json:"description"`
	ExpectedSaving int64            `json:"expected_saving"`
	ReductionRate  string           `json:"reduction_rate"`
	Strategies     []SavingStrategy `json:"strategies"`
}

// SavingPlans holds the three tiers keyed by level identifier
type SavingPlans map[config.SavingLevel]SavingPlan

// LevelSummary condenses one plan for overview displays
type LevelSummary struct {
	TotalSaving   int64      `json:"total_saving"`
	CategoryCount int        `json:"category_count"`
	AvgDifficulty Difficulty `json:"avg_difficulty"`
	TopCategory   string     `json:"top_category,omitempty"`
}
