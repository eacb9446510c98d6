package directory

import (
	"campaign-intake/internal/observability"
	"campaign-intake/internal/store"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestShell(t *testing.T) {
	role := "Marketing Lead"
	tests := []struct {
		name        string
		clients     []store.Client
		err         error
		wantClients int
	}{
		{
			name: "clients loaded",
			clients: []store.Client{
				{ID: "client-42", Name: "Ana Maria Souza", Company: "Acme", Role: &role},
				{ID: "client-7", Name: "Globex", Company: "Globex"},
			},
			wantClients: 2,
		},
		{
			name:        "load failure yields empty list",
			err:         errors.New("db down"),
			wantClients: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			lister := NewMockClientLister(ctrl)
			lister.EXPECT().ListClients(gomock.Any()).Return(tt.clients, tt.err)

			shell := New(lister, observability.NewLogger()).Shell(context.Background())

			require.Len(t, shell.Navigation, 3)
			assert.Equal(t, "/", shell.Navigation[0].Path)
			assert.Equal(t, "Campaign Progress", shell.Navigation[1].Label)
			assert.Equal(t, "/dashboard", shell.Navigation[2].Path)
			assert.NotNil(t, shell.Clients)
			assert.Len(t, shell.Clients, tt.wantClients)
		})
	}
}

func TestShell_CardFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := NewMockClientLister(ctrl)
	avatar := "https://cdn.example.com/ana.png"
	lister.EXPECT().ListClients(gomock.Any()).Return([]store.Client{
		{ID: "client-42", Name: "Ana Souza", Company: "Acme", AvatarURL: &avatar},
	}, nil)

	shell := New(lister, observability.NewLogger()).Shell(context.Background())

	require.Len(t, shell.Clients, 1)
	card := shell.Clients[0]
	assert.Equal(t, "AS", card.Initials)
	assert.Equal(t, "Acme", card.Company)
	require.NotNil(t, card.AvatarURL)
	assert.Equal(t, avatar, *card.AvatarURL)
	assert.Nil(t, card.Role)
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "Ana Maria Souza", want: "AMS"},
		{name: "globex", want: "g"},
		{name: "  Double  Space ", want: "DS"},
		{name: "Élodie Ürban", want: "ÉÜ"},
		{name: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Initials(tt.name))
		})
	}
}
