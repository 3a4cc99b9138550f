package entities

import "time"

// ItemType distinguishes stocked products from services.

type ItemType string

const (
	ItemTypeProduct ItemType = "product"
	ItemTypeService ItemType = "service"
)

func (t ItemType) Valid() bool {
	return t == ItemTypeProduct || t == ItemTypeService
}

// StockStatus classifies a product's stock level against fixed thresholds.

type StockStatus string

const (
	StockStatusOut StockStatus = "out_of_stock"
	StockStatusLow StockStatus = "low_stock"
	StockStatusIn  StockStatus = "in_stock"
)

// lowStockThreshold is exclusive: stock 1..4 is low, 5 and up is in stock.
const lowStockThreshold = 5

// ClassifyStock maps a stock quantity to its status. Thresholds are fixed,
// not configurable.
func ClassifyStock(stock int) StockStatus {
	switch {
	case stock == 0:
		return StockStatusOut
	case stock < lowStockThreshold:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

// CatalogItem is a product or service offered for sale.
//
// Domain notes:
//   - Stock is meaningful only for ItemTypeProduct; services carry 0 by
//     convention.
//   - Orders do not debit Stock. Inventory and orders are tracked
//     independently; see DESIGN.md.

type CatalogItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	CostPrice   *float64  `json:"cost_price,omitempty"`
	Stock       int       `json:"stock"`
	Type        ItemType  `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
}

// StockStatus classifies the item's current stock level.
func (i CatalogItem) StockStatus() StockStatus {
	return ClassifyStock(i.Stock)
}

// StockValue is the retail value of the stock on hand.
func (i CatalogItem) StockValue() float64 {
	return i.Price * float64(i.Stock)
}

// CatalogItemPatch is a shallow merge overlay applied by update operations.
type CatalogItemPatch struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	CostPrice   *float64  `json:"cost_price,omitempty"`
	Stock       *int      `json:"stock,omitempty"`
	Type        *ItemType `json:"type,omitempty"`
}

func (p CatalogItemPatch) Apply(i CatalogItem) CatalogItem {
	if p.Name != nil {
		i.Name = *p.Name
	}
	if p.Description != nil {
		i.Description = *p.Description
	}
	if p.Price != nil {
		i.Price = *p.Price
	}
	if p.CostPrice != nil {
		v := *p.CostPrice
		i.CostPrice = &v
	}
	if p.Stock != nil {
		i.Stock = *p.Stock
	}
	if p.Type != nil {
		i.Type = *p.Type
	}
	// Services carry no stock; the convention holds through type flips and
	// stock patches alike.
	if i.Type == ItemTypeService {
		i.Stock = 0
	}
	return i
}
