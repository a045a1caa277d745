package dto

import (
	"fincoach/internal/config"
	"fincoach/internal/models"
)

// TransactionRequest is one payment record in an analysis request
type TransactionRequest struct {
	ID            string `json:"transaction_id" validate:"required"`
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	Time          string `json:"time" validate:"required"`
	Merchant      string `json:"merchant" validate:"required"`
	Category      string `json:"category"`
	Amount        int64  `json:"amount" validate:"gte=0"`
	PaymentMethod string `json:"payment_method"`
	Balance       int64  `json:"balance" validate:"gte=0"`
}

// ToModel converts the wire record to the internal transaction form
func (r TransactionRequest) ToModel() models.RawTransaction {
	return models.RawTransaction{
		ID:            r.ID,
		Date:          r.Date,
		Time:          r.Time,
		Merchant:      r.Merchant,
		Category:      r.Category,
		Amount:        r.Amount,
		PaymentMethod: r.PaymentMethod,
		Balance:       r.Balance,
	}
}

// AnalyzeRequest is the spending analysis request body
type AnalyzeRequest struct {
	Transactions []TransactionRequest `json:"transactions" validate:"required,min=1,dive"`
}

// ToModels converts all wire records preserving order
func (r AnalyzeRequest) ToModels() []models.RawTransaction {
	txs := make([]models.RawTransaction, 0, len(r.Transactions))
	for _, tr := range r.Transactions {
		txs = append(txs, tr.ToModel())
	}
	return txs
}

// AnalyzeResponse is the full analysis payload: the aggregate view, the
// three saving plans, per-tier summaries and the classified records
type AnalyzeResponse struct {
	Analysis       models.SpendingAnalysis                      `json:"analysis"`
	SavingPlans    models.SavingPlans                           `json:"saving_plans"`
	LevelSummaries map[config.SavingLevel]models.LevelSummary   `json:"level_summaries"`
	Transactions   []models.ClassifiedTransaction               `json:"classified_transactions"`
	Insight        string                                       `json:"insight,omitempty"`
}
