package memory

import (
	"context"

	"gestao360/internal/domain/entities"

	"github.com/google/uuid"
)

// Seed loads the demo fixtures: two clients, three catalog items and one
// pending order. Intended for local development (DEMO_DATA=true).
func Seed(ctx context.Context, store *Store) error {
	clients := NewClientRepository(store)
	catalog := NewCatalogRepository(store)
	orders := NewOrderRepository(store)

	joao, err := clients.Add(ctx, entities.Client{
		Name:    "João Silva",
		Email:   "joao@gmail.com",
		Phone:   "11999999999",
		Address: "Rua A, 123",
	})
	if err != nil {
		return err
	}
	if _, err := clients.Add(ctx, entities.Client{
		Name:    "Maria Souza",
		Email:   "maria@hotmail.com",
		Phone:   "11888888888",
		Address: "Av B, 456",
	}); err != nil {
		return err
	}

	installation, err := catalog.Add(ctx, entities.CatalogItem{
		Name:  "Instalação de Câmera",
		Price: 150.00,
		Type:  entities.ItemTypeService,
	})
	if err != nil {
		return err
	}
	cost := 180.00
	camera, err := catalog.Add(ctx, entities.CatalogItem{
		Name:      "Câmera IP",
		Price:     250.00,
		CostPrice: &cost,
		Stock:     10,
		Type:      entities.ItemTypeProduct,
	})
	if err != nil {
		return err
	}
	if _, err := catalog.Add(ctx, entities.CatalogItem{
		Name:  "Manutenção Elétrica",
		Price: 100.00,
		Type:  entities.ItemTypeService,
	}); err != nil {
		return err
	}

	lines := []entities.OrderLine{
		{ID: uuid.NewString(), CatalogItemID: installation.ID, ProductName: installation.Name, Price: installation.Price, Quantity: 1},
		{ID: uuid.NewString(), CatalogItemID: camera.ID, ProductName: camera.Name, Price: camera.Price, Quantity: 1},
	}
	_, err = orders.Add(ctx, entities.Order{
		ClientID:    joao.ID,
		ClientName:  joao.Name,
		Status:      entities.OrderStatusPending,
		Items:       lines,
		TotalAmount: entities.LinesTotal(lines),
	})
	return err
}
