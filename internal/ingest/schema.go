package ingest

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/Diptesh821/Data-Visualization-Dashboard/internal/entity"
)

// Dataset identifies one of the four fixed upload schemas.
type Dataset string

const (
	DatasetProducts         Dataset = "products"
	DatasetSales            Dataset = "sales"
	DatasetFinancialReports Dataset = "financial_reports"
	DatasetCustomerTrends   Dataset = "customer_trends"
)

// DateLayout is the literal format of every date column (dd-MM-yyyy).
const DateLayout = "02-01-2006"

// Policy adjusts row validation.
type Policy struct {
	// AllowZeroNumerics accepts numeric fields whose value is exactly 0.
	// The default (false) keeps the historical behavior: a numeric field
	// coercing to zero is indistinguishable from a missing one and rejects
	// the row. Whether that is intended for legitimate zero values is an
	// open question; flip this flag to accept them.
	AllowZeroNumerics bool
}

// Transformer maps one raw record to a typed, tenant-stamped entity, or
// rejects it with a *RowError. Implementations are pure: no I/O, no state.
type Transformer interface {
	Dataset() Dataset
	Transform(rec RawRecord) (any, error)
}

// NewTransformer returns the transformer for a dataset kind. Records it
// produces carry ownerID and businessName; validating that those are
// present is the orchestrator's job, once per import.
func NewTransformer(kind Dataset, ownerID uuid.UUID, businessName string, policy Policy) (Transformer, error) {
	base := transformerBase{ownerID: ownerID, businessName: businessName, policy: policy}
	switch kind {
	case DatasetProducts:
		return productTransformer{base}, nil
	case DatasetSales:
		return saleTransformer{base}, nil
	case DatasetFinancialReports:
		return financialReportTransformer{base}, nil
	case DatasetCustomerTrends:
		return customerTrendTransformer{base}, nil
	default:
		return nil, fmt.Errorf("unknown dataset kind %q", kind)
	}
}

type transformerBase struct {
	ownerID      uuid.UUID
	businessName string
	policy       Policy
}

type productTransformer struct{ transformerBase }

func (t productTransformer) Dataset() Dataset { return DatasetProducts }

func (t productTransformer) Transform(rec RawRecord) (any, error) {
	name, err := requireText(rec, "product_name")
	if err != nil {
		return nil, err
	}
	description, err := requireText(rec, "description")
	if err != nil {
		return nil, err
	}
	price, err := requireFloat(rec, "price", t.policy)
	if err != nil {
		return nil, err
	}
	category, err := requireText(rec, "category")
	if err != nil {
		return nil, err
	}

	return &entity.Product{
		ProductName:  name,
		Description:  description,
		Price:        price,
		Category:     category,
		OwnerID:      t.ownerID,
		BusinessName: t.businessName,
	}, nil
}

type saleTransformer struct{ transformerBase }

func (t saleTransformer) Dataset() Dataset { return DatasetSales }

func (t saleTransformer) Transform(rec RawRecord) (any, error) {
	saleDate, err := requireDate(rec, "sale_date")
	if err != nil {
		return nil, err
	}
	quantity, err := requireInt(rec, "quantity", t.policy)
	if err != nil {
		return nil, err
	}
	totalAmount, err := requireFloat(rec, "total_amount", t.policy)
	if err != nil {
		return nil, err
	}

	return &entity.Sale{
		SaleDate:     saleDate,
		Quantity:     quantity,
		TotalAmount:  totalAmount,
		OwnerID:      t.ownerID,
		BusinessName: t.businessName,
	}, nil
}

type financialReportTransformer struct{ transformerBase }

func (t financialReportTransformer) Dataset() Dataset { return DatasetFinancialReports }

func (t financialReportTransformer) Transform(rec RawRecord) (any, error) {
	reportDate, err := requireDate(rec, "report_date")
	if err != nil {
		return nil, err
	}
	revenue, err := requireFloat(rec, "revenue", t.policy)
	if err != nil {
		return nil, err
	}
	expenses, err := requireFloat(rec, "expenses", t.policy)
	if err != nil {
		return nil, err
	}
	netProfit, err := requireFloat(rec, "net_profit", t.policy)
	if err != nil {
		return nil, err
	}

	return &entity.FinancialReport{
		ReportDate:   reportDate,
		Revenue:      revenue,
		Expenses:     expenses,
		NetProfit:    netProfit,
		OwnerID:      t.ownerID,
		BusinessName: t.businessName,
	}, nil
}

type customerTrendTransformer struct{ transformerBase }

func (t customerTrendTransformer) Dataset() Dataset { return DatasetCustomerTrends }

func (t customerTrendTransformer) Transform(rec RawRecord) (any, error) {
	trendDate, err := requireDate(rec, "trend_date")
	if err != nil {
		return nil, err
	}
	segment, err := requireText(rec, "customer_segment")
	if err != nil {
		return nil, err
	}
	metricType, err := requireText(rec, "metric_type")
	if err != nil {
		return nil, err
	}
	metricValue, err := requireFloat(rec, "metric_value", t.policy)
	if err != nil {
		return nil, err
	}
	context, err := requireJSONObject(rec, "additional_context")
	if err != nil {
		return nil, err
	}

	return &entity.CustomerTrend{
		TrendDate:         trendDate,
		CustomerSegment:   segment,
		MetricType:        metricType,
		MetricValue:       metricValue,
		AdditionalContext: context,
		OwnerID:           t.ownerID,
		BusinessName:      t.businessName,
	}, nil
}

func requireText(rec RawRecord, field string) (string, error) {
	v := rec[field]
	if v == "" {
		return "", rejectf("missing required field %q", field)
	}
	return v, nil
}

func requireFloat(rec RawRecord, field string, policy Policy) (float64, error) {
	v := rec[field]
	if v == "" {
		return 0, rejectf("missing required field %q", field)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, rejectf("field %q is not a number", field)
	}
	if f == 0 && !policy.AllowZeroNumerics {
		return 0, rejectf("field %q is zero", field)
	}
	return f, nil
}

func requireInt(rec RawRecord, field string, policy Policy) (int, error) {
	v := rec[field]
	if v == "" {
		return 0, rejectf("missing required field %q", field)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, rejectf("field %q is not an integer", field)
	}
	if n == 0 && !policy.AllowZeroNumerics {
		return 0, rejectf("field %q is zero", field)
	}
	return n, nil
}

func requireDate(rec RawRecord, field string) (time.Time, error) {
	v := rec[field]
	if v == "" {
		return time.Time{}, rejectf("missing required field %q", field)
	}
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return time.Time{}, rejectf("field %q is not a dd-MM-yyyy date", field)
	}
	return t, nil
}

func requireJSONObject(rec RawRecord, field string) (datatypes.JSONMap, error) {
	v := rec[field]
	if v == "" {
		return nil, rejectf("missing required field %q", field)
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(v), &m); err != nil {
		return nil, rejectf("field %q is not a JSON object", field)
	}
	if m == nil {
		return nil, rejectf("field %q is not a JSON object", field)
	}
	return datatypes.JSONMap(m), nil
}
