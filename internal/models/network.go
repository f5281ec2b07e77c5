package models

import "time"

// Network is a blockchain network the platform runs infrastructure on.
// Immutable after creation.
type Network struct {
	ID     string `json:"id" gorm:"column:id;primaryKey"`
	Name   string `json:"name" gorm:"column:name;not null"`
	Symbol string `json:"symbol" gorm:"column:symbol;not null"`
	// Icon is the CSS icon class rendered by the frontend.
	Icon        string    `json:"icon" gorm:"column:icon;not null"`
	IsSupported bool      `json:"isSupported" gorm:"column:is_supported"`
	CreatedAt   time.Time `json:"createdAt" gorm:"column:created_at"`
}

// NewNetwork builds a network record. IsSupported defaults to true unless
// the caller explicitly disables it.
func NewNetwork(name, symbol, icon string, isSupported bool) *Network {
	return &Network{
		Name:        name,
		Symbol:      symbol,
		Icon:        icon,
		IsSupported: isSupported,
	}
}
