package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Storer defines all public methods available on the Store
type Storer interface {
	// Database
	GetDB() *sqlx.DB
	Ping(ctx context.Context) error

	// Client operations
	ListClients(ctx context.Context) ([]Client, error)
	GetClientByID(ctx context.Context, clientID string) (Client, error)

	// Campaign link operations
	CreateCampaignClient(ctx context.Context, clientID, taskID string) (CampaignClient, error)
	GetTaskIDsByClientID(ctx context.Context, clientID string) ([]string, error)
}

var _ Storer = (*Store)(nil)
