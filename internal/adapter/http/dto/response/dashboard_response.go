package response

import "gestao360/internal/usecase"

type InventoryLineResponse struct {
	Item       CatalogItemResponse `json:"item"`
	Status     string              `json:"status"`
	StockValue float64             `json:"stock_value"`
}

type InventoryReportResponse struct {
	Items      []InventoryLineResponse `json:"items"`
	LowStock   int                     `json:"low_stock"`
	OutOfStock int                     `json:"out_of_stock"`
	TotalValue float64                 `json:"total_value"`
}

func FromInventoryReport(r usecase.InventoryReport) InventoryReportResponse {
	items := make([]InventoryLineResponse, 0, len(r.Items))
	for _, line := range r.Items {
		items = append(items, InventoryLineResponse{
			Item:       FromCatalogItem(line.Item),
			Status:     string(line.Status),
			StockValue: line.StockValue,
		})
	}
	return InventoryReportResponse{
		Items:      items,
		LowStock:   r.LowStock,
		OutOfStock: r.OutOfStock,
		TotalValue: r.TotalValue,
	}
}

type ScheduleGroupResponse struct {
	Date   string          `json:"date"`
	Orders []OrderResponse `json:"orders"`
}

func FromScheduleGroups(groups []usecase.ScheduleGroup) []ScheduleGroupResponse {
	out := make([]ScheduleGroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, ScheduleGroupResponse{Date: g.Date, Orders: FromOrders(g.Orders)})
	}
	return out
}
