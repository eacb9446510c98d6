package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const sqlListClients = `
SELECT id, name, company, avatar_url, role
FROM clients
ORDER BY name ASC
`

// ListClients returns every client ordered by name
func (s *Store) ListClients(ctx context.Context) ([]Client, error) {
	clients := []Client{}
	if err := s.db.SelectContext(ctx, &clients, sqlListClients); err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

const sqlGetClientByID = `
SELECT id, name, company, avatar_url, role
FROM clients
WHERE id = $1
`

// GetClientByID retrieves a client by ID
func (s *Store) GetClientByID(ctx context.Context, clientID string) (Client, error) {
	var client Client
	err := s.db.GetContext(ctx, &client, sqlGetClientByID, clientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Client{}, ErrNotFound
		}
		return Client{}, fmt.Errorf("failed to get client by id: %w", err)
	}
	return client, nil
}
