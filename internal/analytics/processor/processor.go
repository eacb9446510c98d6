package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"campaign-intake/internal/clients/clickup"
	"campaign-intake/internal/observability"
	"campaign-intake/internal/progress"
	"context"
	"sort"
	"time"
)

// CampaignSource defines the adapter call required by AnalyticsProcessor
type CampaignSource interface {
	ListCampaignTasks(ctx context.Context, clientID string) ([]clickup.Task, error)
}

type AnalyticsProcessor struct {
	source CampaignSource
	logger *observability.Logger
}

func New(source CampaignSource, logger *observability.Logger) AnalyticsProcessor {
	return AnalyticsProcessor{
		source: source,
		logger: logger,
	}
}

// statusOrder is the display order of the status breakdown
var statusOrder = []progress.StatusKey{
	progress.StatusRequested,
	progress.StatusInReview,
	progress.StatusApproved,
	progress.StatusInProgress,
	progress.StatusCompleted,
	progress.StatusUnspecified,
}

// StatusCount is the number of campaigns in one lifecycle stage
type StatusCount struct {
	Status progress.StatusKey `json:"status"`
	Tone   progress.Tone      `json:"tone"`
	Count  int                `json:"count"`
}

// MonthCount is the number of campaigns created in one calendar month
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// CampaignSummary identifies a single campaign in the overview
type CampaignSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	RawStatus string    `json:"raw_status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AnalyticsOverviewResponse represents the overview analytics response
type AnalyticsOverviewResponse struct {
	ClientID            string           `json:"client_id,omitempty"`
	TotalCampaigns      int              `json:"total_campaigns"`
	ActiveCampaigns     int              `json:"active_campaigns"`
	Statuses            []StatusCount    `json:"statuses"`
	CreatedPerMonth     []MonthCount     `json:"created_per_month"`
	MostRecentlyUpdated *CampaignSummary `json:"most_recently_updated,omitempty"`
}

// GetAnalyticsOverview derives campaign statistics from the tracker's tasks,
// restricted to the client's campaigns when clientID is set.
func (p *AnalyticsProcessor) GetAnalyticsOverview(ctx context.Context, clientID string) (AnalyticsOverviewResponse, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "client_id", Value: clientID})

	tasks, err := p.source.ListCampaignTasks(ctx, clientID)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaign tasks for analytics", err)
		return AnalyticsOverviewResponse{}, err
	}

	counts := make(map[progress.StatusKey]int, len(statusOrder))
	months := make(map[string]int)
	var latest *CampaignSummary

	for _, task := range tasks {
		key := progress.ClassifyStatus(task.Status.Status)
		counts[key]++

		if created, err := clickup.ParseTimestamp(task.DateCreated); err == nil {
			months[created.Format("2006-01")]++
		}

		updated, err := clickup.ParseTimestamp(task.DateUpdated)
		if err != nil {
			continue
		}
		if latest == nil || updated.After(latest.UpdatedAt) {
			latest = &CampaignSummary{
				ID:        task.ID,
				Title:     task.Name,
				RawStatus: task.Status.Status,
				UpdatedAt: updated,
			}
		}
	}

	resp := AnalyticsOverviewResponse{
		ClientID:            clientID,
		TotalCampaigns:      len(tasks),
		ActiveCampaigns:     len(tasks) - counts[progress.StatusCompleted],
		Statuses:            make([]StatusCount, 0, len(statusOrder)),
		CreatedPerMonth:     make([]MonthCount, 0, len(months)),
		MostRecentlyUpdated: latest,
	}
	for _, key := range statusOrder {
		resp.Statuses = append(resp.Statuses, StatusCount{Status: key, Tone: key.Tone(), Count: counts[key]})
	}
	for month, count := range months {
		resp.CreatedPerMonth = append(resp.CreatedPerMonth, MonthCount{Month: month, Count: count})
	}
	sort.Slice(resp.CreatedPerMonth, func(i, j int) bool {
		return resp.CreatedPerMonth[i].Month < resp.CreatedPerMonth[j].Month
	})

	p.logger.Info(ctx, "analytics overview computed")
	return resp, nil
}
