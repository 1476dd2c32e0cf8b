// Package store is the tenant-scoped persistence layer. Every write and
// every read is keyed by the owning user id; business_name is carried as a
// denormalized label and never used for scoping on its own.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Diptesh821/Data-Visualization-Dashboard/internal/entity"
	"github.com/Diptesh821/Data-Visualization-Dashboard/internal/ingest"
)

// ErrStore wraps constraint violations and connectivity failures.
var ErrStore = errors.New("store error")

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Append inserts one validated record. Each call commits independently.
func (s *Store) Append(ctx context.Context, record any) error {
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	return nil
}

// Transaction runs fn against a transactional store. Used only for atomic
// batch imports.
func (s *Store) Transaction(ctx context.Context, fn func(ingest.Store) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
	if err != nil && !errors.Is(err, ErrStore) {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	return err
}

// ListProducts returns the owner's products. Products carry no date column,
// so no ordering is applied.
func (s *Store) ListProducts(ctx context.Context, ownerID uuid.UUID) ([]entity.Product, error) {
	products := []entity.Product{}
	if err := s.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return products, nil
}

func (s *Store) ListSales(ctx context.Context, ownerID uuid.UUID) ([]entity.Sale, error) {
	sales := []entity.Sale{}
	if err := s.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("sale_date DESC").Find(&sales).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return sales, nil
}

func (s *Store) ListFinancialReports(ctx context.Context, ownerID uuid.UUID) ([]entity.FinancialReport, error) {
	reports := []entity.FinancialReport{}
	if err := s.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("report_date DESC").Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return reports, nil
}

func (s *Store) ListCustomerTrends(ctx context.Context, ownerID uuid.UUID) ([]entity.CustomerTrend, error) {
	trends := []entity.CustomerTrend{}
	if err := s.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("trend_date DESC").Find(&trends).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return trends, nil
}
