package models

import "time"

// Purchase registers stock entering the inventory from a supplier.
type Purchase struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SupplierID uint     `json:"supplier_id"`
	Supplier   Supplier `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"supplier"`

	Date  time.Time      `gorm:"type:date" json:"date"`
	Total float64        `json:"total"`
	Items []PurchaseItem `gorm:"constraint:OnDelete:CASCADE;" json:"items"`

	Observations string `gorm:"size:500" json:"observations"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PurchaseItem struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	PurchaseID uint `gorm:"index" json:"purchase_id"`

	SupplyID uint   `json:"supply_id"`
	Supply   Supply `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"supply"`

	Quantity int     `json:"quantity"`
	UnitCost float64 `json:"unit_cost"`
	Subtotal float64 `json:"subtotal"`
}
