package store

import (
	"testing"

	"github.com/google/uuid"
)

// Fixtures provides factory functions for creating test data.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
}

// NewFixtures creates a new Fixtures instance for test data generation.
func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{t: t, testDB: testDB}
}

// ClientOpts customizes client creation.
type ClientOpts struct {
	Name      string
	Company   string
	AvatarURL *string
	Role      *string
}

// CreateClient inserts a client with a unique id and returns it.
func (f *Fixtures) CreateClient(opts ClientOpts) Client {
	f.t.Helper()
	if opts.Company == "" {
		opts.Company = "Acme"
	}
	client := Client{
		ID:        "client-" + uuid.New().String(),
		Name:      opts.Name,
		Company:   opts.Company,
		AvatarURL: opts.AvatarURL,
		Role:      opts.Role,
	}
	f.testDB.MustExec(f.t,
		`INSERT INTO clients (id, name, company, avatar_url, role) VALUES ($1, $2, $3, $4, $5)`,
		client.ID, client.Name, client.Company, client.AvatarURL, client.Role)
	return client
}
