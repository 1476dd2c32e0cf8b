package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	ID           uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primary_key"`
	ProductName  string    `json:"product_name" gorm:"type:varchar(255);not null"`
	Description  string    `json:"description" gorm:"type:text;not null"`
	Price        float64   `json:"price" gorm:"type:numeric(14,2);not null"`
	Category     string    `json:"category" gorm:"type:varchar(100);not null"`
	OwnerID      uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`
	BusinessName string    `json:"business_name" gorm:"type:varchar(255);not null"`
}
