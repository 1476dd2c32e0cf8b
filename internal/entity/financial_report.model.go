package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FinancialReport struct {
	gorm.Model
	ID           uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primary_key"`
	ReportDate   time.Time `json:"report_date" gorm:"type:date;not null;index:idx_financial_reports_owner_date"`
	Revenue      float64   `json:"revenue" gorm:"type:numeric(14,2);not null"`
	Expenses     float64   `json:"expenses" gorm:"type:numeric(14,2);not null"`
	NetProfit    float64   `json:"net_profit" gorm:"type:numeric(14,2);not null"`
	OwnerID      uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index:idx_financial_reports_owner_date"`
	BusinessName string    `json:"business_name" gorm:"type:varchar(255);not null"`
}
