package usecase

import (
	"context"
	"errors"
	"strings"

	"gestao360/internal/domain/entities"
	"gestao360/internal/usecase/interfaces"
)

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrInvalidClientID    = errors.New("invalid client id")
	ErrInvalidClientInput = errors.New("invalid client input")
)

// IClientUseCase exposes the client collection operations.

type IClientUseCase interface {
	RegisterClient(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	UpdateClient(ctx context.Context, id string, patch entities.ClientPatch) (entities.Client, error)
	DeleteClient(ctx context.Context, id string) error
	ListClients(ctx context.Context, search string) ([]entities.Client, error)
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// RegisterClient stores a new client. Field-level validation happens at the
// request boundary; this only guards against blank records reaching the store.
func (u *ClientUseCase) RegisterClient(ctx context.Context, c entities.Client) (entities.Client, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	if c.Name == "" || c.Email == "" {
		return entities.Client{}, ErrInvalidClientInput
	}
	return u.repo.Add(ctx, c)
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) UpdateClient(ctx context.Context, id string, patch entities.ClientPatch) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.Client{}, err
	}
	if updated.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return updated, nil
}

func (u *ClientUseCase) DeleteClient(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClientID
	}
	return u.repo.Delete(ctx, id)
}

// ListClients returns clients in insertion order, optionally filtered by a
// case-insensitive substring match on name, email or phone.
func (u *ClientUseCase) ListClients(ctx context.Context, search string) ([]entities.Client, error) {
	clients, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return clients, nil
	}
	filtered := make([]entities.Client, 0, len(clients))
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Name), search) ||
			strings.Contains(strings.ToLower(c.Email), search) ||
			strings.Contains(c.Phone, search) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}
