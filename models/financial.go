package models

import (
	"errors"
	"time"
)

// ErrMissingEntryFields is returned when a financial entry create request
// omits one of the mandatory fields.
var ErrMissingEntryFields = errors.New("entry_date, daily_sales, and cash_balance are required")

// FinancialEntry is one daily financial snapshot stored in the entries table.
type FinancialEntry struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	EntryDate          string    `gorm:"column:entry_date;not null" json:"entry_date"`
	DailySales         float64   `gorm:"column:daily_sales;not null" json:"daily_sales"`
	TaxesPercent       float64   `gorm:"column:taxes_percent;not null" json:"taxes_percent"`
	RoyaltyPercent     float64   `gorm:"column:royalty_percent;not null" json:"royalty_percent"`
	RentPercent        float64   `gorm:"column:rent_percent;not null" json:"rent_percent"`
	AdvertisingPercent float64   `gorm:"column:advertising_percent;not null" json:"advertising_percent"`
	COGSPercent        float64   `gorm:"column:cogs_percent;not null" json:"cogs_percent"`
	LaborPercent       float64   `gorm:"column:labor_percent;not null" json:"labor_percent"`
	RMPercent          float64   `gorm:"column:rm_percent;not null" json:"rm_percent"`
	UtilitiesPercent   float64   `gorm:"column:utilities_percent;not null" json:"utilities_percent"`
	MerchantPercent    float64   `gorm:"column:merchant_percent;not null" json:"merchant_percent"`
	SuppliesPercent    float64   `gorm:"column:supplies_percent;not null" json:"supplies_percent"`
	InsurancePercent   float64   `gorm:"column:insurance_percent;not null" json:"insurance_percent"`
	CashBalance        float64   `gorm:"column:cash_balance;not null" json:"cash_balance"`
	CreatedAt          time.Time `json:"created_at"`
}

// TableName keeps the original table name instead of GORM's pluralized default.
func (FinancialEntry) TableName() string {
	return "entries"
}

// FinancialEntryUpsert is the request payload for creating or replacing a
// financial entry. Mandatory fields are pointers so that an explicit zero can
// be told apart from an omitted field; percentages default to 0 either way.
type FinancialEntryUpsert struct {
	EntryDate          *string  `json:"entry_date"`
	DailySales         *float64 `json:"daily_sales"`
	TaxesPercent       float64  `json:"taxes_percent"`
	RoyaltyPercent     float64  `json:"royalty_percent"`
	RentPercent        float64  `json:"rent_percent"`
	AdvertisingPercent float64  `json:"advertising_percent"`
	COGSPercent        float64  `json:"cogs_percent"`
	LaborPercent       float64  `json:"labor_percent"`
	RMPercent          float64  `json:"rm_percent"`
	UtilitiesPercent   float64  `json:"utilities_percent"`
	MerchantPercent    float64  `json:"merchant_percent"`
	SuppliesPercent    float64  `json:"supplies_percent"`
	InsurancePercent   float64  `json:"insurance_percent"`
	CashBalance        *float64 `json:"cash_balance"`
}

// Validate enforces the create-time required fields. An empty entry_date
// counts as missing; daily_sales and cash_balance only need to be present,
// so an explicit 0 passes.
func (p *FinancialEntryUpsert) Validate() error {
	if p.EntryDate == nil || *p.EntryDate == "" || p.DailySales == nil || p.CashBalance == nil {
		return ErrMissingEntryFields
	}
	return nil
}

// Row builds the storage row for a validated create request.
func (p *FinancialEntryUpsert) Row() FinancialEntry {
	return FinancialEntry{
		EntryDate:          *p.EntryDate,
		DailySales:         *p.DailySales,
		TaxesPercent:       p.TaxesPercent,
		RoyaltyPercent:     p.RoyaltyPercent,
		RentPercent:        p.RentPercent,
		AdvertisingPercent: p.AdvertisingPercent,
		COGSPercent:        p.COGSPercent,
		LaborPercent:       p.LaborPercent,
		RMPercent:          p.RMPercent,
		UtilitiesPercent:   p.UtilitiesPercent,
		MerchantPercent:    p.MerchantPercent,
		SuppliesPercent:    p.SuppliesPercent,
		InsurancePercent:   p.InsurancePercent,
		CashBalance:        *p.CashBalance,
	}
}

// Columns maps the payload to column values for a full-replace update.
// A missing mandatory field becomes NULL and fails the table's NOT NULL
// constraint; update performs no validation of its own.
func (p *FinancialEntryUpsert) Columns() map[string]interface{} {
	return map[string]interface{}{
		"entry_date":          p.EntryDate,
		"daily_sales":         p.DailySales,
		"taxes_percent":       p.TaxesPercent,
		"royalty_percent":     p.RoyaltyPercent,
		"rent_percent":        p.RentPercent,
		"advertising_percent": p.AdvertisingPercent,
		"cogs_percent":        p.COGSPercent,
		"labor_percent":       p.LaborPercent,
		"rm_percent":          p.RMPercent,
		"utilities_percent":   p.UtilitiesPercent,
		"merchant_percent":    p.MerchantPercent,
		"supplies_percent":    p.SuppliesPercent,
		"insurance_percent":   p.InsurancePercent,
		"cash_balance":        p.CashBalance,
	}
}
