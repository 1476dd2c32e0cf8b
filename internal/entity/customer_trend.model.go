package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CustomerTrend struct {
	gorm.Model
	ID                uuid.UUID         `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primary_key"`
	TrendDate         time.Time         `json:"trend_date" gorm:"type:date;not null;index:idx_customer_trends_owner_date"`
	CustomerSegment   string            `json:"customer_segment" gorm:"type:varchar(100);not null"`
	MetricType        string            `json:"metric_type" gorm:"type:varchar(100);not null"`
	MetricValue       float64           `json:"metric_value" gorm:"type:numeric(14,2);not null"`
	AdditionalContext datatypes.JSONMap `json:"additional_context" gorm:"type:jsonb;not null"`
	OwnerID           uuid.UUID         `json:"owner_id" gorm:"type:uuid;not null;index:idx_customer_trends_owner_date"`
	BusinessName      string            `json:"business_name" gorm:"type:varchar(255);not null"`
}
