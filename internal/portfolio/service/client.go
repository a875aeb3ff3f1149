package service

import (
	"context"
	"errors"

	"github.com/walletworks/portfolio/internal/portfolio/domain"
	"github.com/walletworks/portfolio/internal/portfolio/store"
	"github.com/walletworks/portfolio/pkg/slogx"
)

var ErrEmailTaken = errors.New("a client with this email already exists")

// ClientService manages the client catalog. Clients are never hard-deleted;
// deactivation goes through the status flag.
type ClientService struct {
	Store store.Store
}

// Create registers a new client. The email must be unique across the catalog.
func (s *ClientService) Create(ctx context.Context, name, email string, status bool) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	if err := ValidateClientCreate(name, email); err != nil {
		return domain.Client{}, err
	}

	c, err := s.Store.Clients().CreateClient(ctx, domain.Client{
		Name:   name,
		Email:  email,
		Status: status,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Client{}, ErrEmailTaken
		}
		l.Error("failed to create client", "error", err)
		return domain.Client{}, err
	}

	l.Info("client created", "client_id", c.ID, "email", c.Email)
	return c, nil
}

// Get returns a client by id.
func (s *ClientService) Get(ctx context.Context, id int64) (domain.Client, error) {
	c, err := s.Store.Clients().GetClientByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, ErrClientNotFound
		}
		return domain.Client{}, err
	}
	return c, nil
}

// List returns all clients in creation order.
func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.Store.Clients().ListClients(ctx)
}

// Update applies a partial update; absent fields stay unchanged.
func (s *ClientService) Update(ctx context.Context, id int64, p domain.ClientPatch) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	if err := ValidateClientUpdate(p.Name, p.Email); err != nil {
		return domain.Client{}, err
	}

	c, err := s.Store.Clients().UpdateClient(ctx, id, p)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return domain.Client{}, ErrClientNotFound
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.Client{}, ErrEmailTaken
		}
		l.Error("failed to update client", "error", err, "client_id", id)
		return domain.Client{}, err
	}

	l.Info("client updated", "client_id", id)
	return c, nil
}
