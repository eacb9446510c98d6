package store

import (
	"context"
	"fmt"
)

const sqlCreateCampaignClient = `
INSERT INTO campaign_clients (client_id, clickup_task_id)
VALUES ($1, $2)
RETURNING client_id, clickup_task_id, created_at
`

// CreateCampaignClient links a tracking task to a client
func (s *Store) CreateCampaignClient(ctx context.Context, clientID, taskID string) (CampaignClient, error) {
	var link CampaignClient
	if err := s.db.GetContext(ctx, &link, sqlCreateCampaignClient, clientID, taskID); err != nil {
		return CampaignClient{}, fmt.Errorf("failed to create campaign client: %w", err)
	}
	return link, nil
}

const sqlGetTaskIDsByClientID = `
SELECT clickup_task_id
FROM campaign_clients
WHERE client_id = $1
`

// GetTaskIDsByClientID returns the ids of every task linked to the client
func (s *Store) GetTaskIDsByClientID(ctx context.Context, clientID string) ([]string, error) {
	taskIDs := []string{}
	if err := s.db.SelectContext(ctx, &taskIDs, sqlGetTaskIDsByClientID, clientID); err != nil {
		return nil, fmt.Errorf("failed to get task ids by client id: %w", err)
	}
	return taskIDs, nil
}
