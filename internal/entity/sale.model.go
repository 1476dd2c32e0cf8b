package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Sale struct {
	gorm.Model
	ID           uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primary_key"`
	SaleDate     time.Time `json:"sale_date" gorm:"type:date;not null;index:idx_sales_owner_date"`
	Quantity     int       `json:"quantity" gorm:"not null"`
	TotalAmount  float64   `json:"total_amount" gorm:"type:numeric(14,2);not null"`
	OwnerID      uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index:idx_sales_owner_date"`
	BusinessName string    `json:"business_name" gorm:"type:varchar(255);not null"`
}
