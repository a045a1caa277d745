package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"fincoach/internal/config"
	"fincoach/internal/models"
)

var (
	ErrMalformedDate = errors.New("malformed transaction date")
	ErrMalformedTime = errors.New("malformed transaction time")
)

type classifierService struct{}

// NewClassifierService creates a new ClassifierServiceInterface instance
func NewClassifierService() ClassifierServiceInterface {
	return &classifierService{}
}

// Classify annotates a transaction with its time bucket, amount hints and
// keyword hints. The input record is never mutated. Malformed date or
// time strings are a caller contract violation and return an error.
func (s *classifierService) Classify(tx models.RawTransaction) (models.ClassifiedTransaction, error) {
	date, err := time.Parse("2006-01-02", tx.Date)
	if err != nil {
		return models.ClassifiedTransaction{}, fmt.Errorf("%w: %q", ErrMalformedDate, tx.Date)
	}

	minutes, err := clockMinutes(tx.Time)
	if err != nil {
		return models.ClassifiedTransaction{}, fmt.Errorf("%w: %q", ErrMalformedTime, tx.Time)
	}

	weekend := config.WeekendDays[date.Weekday()]
	weekdayType := config.WeekdayTypeWeekday
	table := config.WeekdayBuckets
	if weekend {
		weekdayType = config.WeekdayTypeWeekend
		table = config.WeekendBuckets
	}

	return models.ClassifiedTransaction{
		RawTransaction: tx,
		IsWeekend:      weekend,
		WeekdayType:    weekdayType,
		TimeBucket:     assignBucket(table, minutes),
		AmountHints:    amountHints(tx.Amount),
		KeywordHints:   keywordHints(tx.Merchant, tx.Category),
	}, nil
}

// ClassifyBatch classifies transactions in input order
func (s *classifierService) ClassifyBatch(txs []models.RawTransaction) ([]models.ClassifiedTransaction, error) {
	classified := make([]models.ClassifiedTransaction, 0, len(txs))
	for _, tx := range txs {
		ct, err := s.Classify(tx)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", tx.ID, err)
		}
		classified = append(classified, ct)
	}
	return classified, nil
}

// assignBucket returns the first interval containing the clock value, in
// declared table order. Interval bounds are inclusive on both ends.
func assignBucket(table []config.TimeBucket, minutes int) string {
	for _, b := range table {
		start, err := config.ParseClock(b.Start)
		if err != nil {
			continue
		}
		end, err := config.ParseClock(b.End)
		if err != nil {
			continue
		}
		if minutes >= start && minutes <= end {
			return b.Label
		}
	}
	return config.TimeBucketOther
}

// amountHints returns every configured range containing the amount.
// Ranges overlap by design, so several labels can match.
func amountHints(amount int64) []string {
	hints := make([]string, 0, 2)
	for _, r := range config.AmountHints {
		if amount >= r.Low && amount <= r.High {
			hints = append(hints, r.Label)
		}
	}
	return hints
}

// keywordHints scans merchant and category text for known keywords and
// returns the matched category labels as a sorted, de-duplicated set
func keywordHints(merchant, category string) []string {
	merged := merchant + " " + category
	seen := make(map[string]bool)
	for keyword, label := range config.KeywordHints {
		if strings.Contains(merged, keyword) {
			seen[label] = true
		}
	}

	hints := make([]string, 0, len(seen))
	for label := range seen {
		hints = append(hints, label)
	}
	sort.Strings(hints)
	return hints
}

// clockMinutes parses "HH:MM" or "HH:MM:SS" to minutes after midnight;
// seconds are truncated so bucket matching stays at minute granularity
func clockMinutes(s string) (int, error) {
	if len(s) > 5 {
		s = s[:5]
	}
	return config.ParseClock(s)
}
