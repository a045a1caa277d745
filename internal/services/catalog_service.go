package services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"fincoach/internal/config"
	"fincoach/internal/models"
)

// Catalog product type labels used for metrics and health reporting
const (
	ProductTypeTimeDeposit = "time_deposit"
	ProductTypeSaving      = "installment_saving"
)

type catalogService struct {
	cfg     config.CatalogConfig
	metrics MetricsRecorderInterface
	catalog models.ProductCatalog
	loaded  bool
}

// NewCatalogService creates a new CatalogServiceInterface instance
func NewCatalogService(cfg config.CatalogConfig, metrics MetricsRecorderInterface) CatalogServiceInterface {
	return &catalogService{cfg: cfg, metrics: metrics}
}

// Load reads both catalog files once at startup. A missing file yields an
// empty product list with a warning; a file that exists but cannot be
// decoded is a startup failure. Entries missing required fields are
// skipped, and each list is capped at its configured maximum.
func (s *catalogService) Load() error {
	deposits, err := loadProducts[models.TimeDeposit](s.cfg.TimeDepositPath)
	if err != nil {
		return fmt.Errorf("loading time deposit catalog: %w", err)
	}
	savings, err := loadProducts[models.InstallmentSaving](s.cfg.SavingProductPath)
	if err != nil {
		return fmt.Errorf("loading savings catalog: %w", err)
	}

	s.catalog.TimeDeposits = capProducts(filterDeposits(deposits), s.cfg.MaxTimeDeposits)
	s.catalog.SavingProducts = capProducts(filterSavings(savings), s.cfg.MaxSavingProducts)
	s.loaded = true

	if s.metrics != nil {
		s.metrics.SetCatalogSize(ProductTypeTimeDeposit, len(s.catalog.TimeDeposits))
		s.metrics.SetCatalogSize(ProductTypeSaving, len(s.catalog.SavingProducts))
	}
	slog.Info("product catalog loaded",
		"time_deposits", len(s.catalog.TimeDeposits),
		"saving_products", len(s.catalog.SavingProducts))
	return nil
}

func (s *catalogService) Loaded() bool {
	return s.loaded
}

func (s *catalogService) TimeDeposits() []models.TimeDeposit {
	return s.catalog.TimeDeposits
}

func (s *catalogService) SavingProducts() []models.InstallmentSaving {
	return s.catalog.SavingProducts
}

func loadProducts[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("catalog file not found, serving empty list", "path", path)
			return []T{}, nil
		}
		return nil, err
	}

	var products []T
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return products, nil
}

func filterDeposits(products []models.TimeDeposit) []models.TimeDeposit {
	out := make([]models.TimeDeposit, 0, len(products))
	for _, p := range products {
		if p.Vendor == "" || p.Name == "" || p.TermMonths <= 0 || p.PreTaxPreferentialTotal.IsNegative() {
			slog.Warn("skipping invalid time deposit entry", "vendor", p.Vendor, "name", p.Name)
			continue
		}
		out = append(out, p)
	}
	return out
}

func filterSavings(products []models.InstallmentSaving) []models.InstallmentSaving {
	out := make([]models.InstallmentSaving, 0, len(products))
	for _, p := range products {
		if p.Vendor == "" || p.Name == "" || p.DefaultTermMonths <= 0 || p.PreTaxPreferentialTotal.IsNegative() {
			slog.Warn("skipping invalid savings entry", "vendor", p.Vendor, "name", p.Name)
			continue
		}
		out = append(out, p)
	}
	return out
}

func capProducts[T any](products []T, limit int) []T {
	if limit > 0 && len(products) > limit {
		return products[:limit]
	}
	return products
}
