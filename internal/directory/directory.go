package directory

//go:generate go run go.uber.org/mock/mockgen@latest -source=directory.go -destination=mocks_test.go -package=directory

import (
	"campaign-intake/internal/observability"
	"campaign-intake/internal/store"
	"context"
	"strings"
	"unicode/utf8"
)

// ClientLister loads the client directory
type ClientLister interface {
	ListClients(ctx context.Context) ([]store.Client, error)
}

// NavEntry is one navigation link of the application shell
type NavEntry struct {
	Label string `json:"label"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`
}

// Navigation lists the shell's links in display order
var Navigation = []NavEntry{
	{Label: "New Campaign", Path: "/", Icon: "plus"},
	{Label: "Campaign Progress", Path: "/progress", Icon: "clock"},
	{Label: "Analytics", Path: "/dashboard", Icon: "bar-chart"},
}

// ClientCard is a client profile as shown in the sidebar
type ClientCard struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Company   string  `json:"company"`
	Initials  string  `json:"initials"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Role      *string `json:"role,omitempty"`
}

// Shell is everything the navigation frame renders
type Shell struct {
	Navigation []NavEntry   `json:"navigation"`
	Clients    []ClientCard `json:"clients"`
}

type Directory struct {
	clients ClientLister
	logger  *observability.Logger
}

func New(clients ClientLister, logger *observability.Logger) *Directory {
	return &Directory{clients: clients, logger: logger}
}

// Shell returns the navigation links and client cards. A failed client load
// is logged and leaves the client list empty.
func (d *Directory) Shell(ctx context.Context) Shell {
	nav := make([]NavEntry, len(Navigation))
	copy(nav, Navigation)
	shell := Shell{Navigation: nav, Clients: []ClientCard{}}

	clients, err := d.clients.ListClients(ctx)
	if err != nil {
		d.logger.Error(ctx, "failed to load clients for shell", err)
		return shell
	}

	for _, c := range clients {
		shell.Clients = append(shell.Clients, ClientCard{
			ID:        c.ID,
			Name:      c.Name,
			Company:   c.Company,
			Initials:  Initials(c.Name),
			AvatarURL: c.AvatarURL,
			Role:      c.Role,
		})
	}
	return shell
}

// Initials joins the first letter of every space separated word of name.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Split(name, " ") {
		if word == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}
	return b.String()
}
