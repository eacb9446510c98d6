package store

import "time"

// Client is a customer on whose behalf campaigns are requested
type Client struct {
	ID        string  `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Company   string  `db:"company" json:"company"`
	AvatarURL *string `db:"avatar_url" json:"avatar_url,omitempty"`
	Role      *string `db:"role" json:"role,omitempty"`
}

// CampaignClient links a client to a task in the tracking service
type CampaignClient struct {
	ClientID      string    `db:"client_id" json:"client_id"`
	ClickUpTaskID string    `db:"clickup_task_id" json:"clickup_task_id"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
