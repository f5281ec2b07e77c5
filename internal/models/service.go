package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service categories offered by the platform.
const (
	CategoryValidator  = "validator"
	CategoryRPC        = "rpc"
	CategoryEnterprise = "enterprise"
)

// Service is an infrastructure offering shown on the pricing page.
// Immutable after creation.
type Service struct {
	ID          string   `json:"id" gorm:"column:id;primaryKey"`
	Name        string   `json:"name" gorm:"column:name;not null"`
	Description string   `json:"description" gorm:"column:description;not null"`
	Features    []string `json:"features" gorm:"column:features;serializer:json"`
	// Price is the monthly price in USD; nil for quote-based offerings.
	Price    *decimal.Decimal `json:"price" gorm:"column:price;type:numeric(10,2)"`
	Category string           `json:"category" gorm:"column:category;index;not null"`
	// IsPopular marks the offering highlighted on the pricing page.
	IsPopular bool      `json:"isPopular" gorm:"column:is_popular"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

// NewService builds a service record with defaults applied
// (IsPopular defaults to false, Price to nil).
func NewService(name, description string, features []string, price *decimal.Decimal, category string, isPopular bool) *Service {
	return &Service{
		Name:        name,
		Description: description,
		Features:    features,
		Price:       price,
		Category:    category,
		IsPopular:   isPopular,
	}
}
