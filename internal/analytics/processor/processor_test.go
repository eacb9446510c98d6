package processor

import (
	"campaign-intake/internal/clients/clickup"
	"campaign-intake/internal/observability"
	"campaign-intake/internal/progress"
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func msAt(year int, month time.Month, day int) string {
	return strconv.FormatInt(time.Date(year, month, day, 9, 0, 0, 0, time.UTC).UnixMilli(), 10)
}

func TestGetAnalyticsOverview_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSource := NewMockCampaignSource(ctrl)
	processor := New(mockSource, observability.NewLogger())

	mockSource.EXPECT().ListCampaignTasks(gomock.Any(), "client-42").Return([]clickup.Task{
		{ID: "A", Name: "a", Status: clickup.TaskStatus{Status: "SOLICITAÇÃO"}, DateCreated: msAt(2024, 3, 2), DateUpdated: msAt(2024, 3, 5)},
		{ID: "B", Name: "b", Status: clickup.TaskStatus{Status: "CONCLUÍDO"}, DateCreated: msAt(2024, 1, 20), DateUpdated: msAt(2024, 4, 1)},
		{ID: "C", Name: "c", Status: clickup.TaskStatus{Status: "APROVADO"}, DateCreated: msAt(2024, 3, 15), DateUpdated: "bad"},
		{ID: "D", Name: "d", Status: clickup.TaskStatus{Status: "weird"}, DateCreated: "", DateUpdated: msAt(2024, 2, 1)},
	}, nil)

	overview, err := processor.GetAnalyticsOverview(context.Background(), "client-42")
	require.NoError(t, err)

	assert.Equal(t, 4, overview.TotalCampaigns)
	assert.Equal(t, 3, overview.ActiveCampaigns)

	counts := make(map[progress.StatusKey]int)
	for _, s := range overview.Statuses {
		counts[s.Status] = s.Count
	}
	assert.Len(t, overview.Statuses, 6)
	assert.Equal(t, progress.StatusRequested, overview.Statuses[0].Status)
	assert.Equal(t, progress.ToneYellow, overview.Statuses[0].Tone)
	assert.Equal(t, 1, counts[progress.StatusRequested])
	assert.Equal(t, 1, counts[progress.StatusCompleted])
	assert.Equal(t, 1, counts[progress.StatusApproved])
	assert.Equal(t, 1, counts[progress.StatusUnspecified])
	assert.Equal(t, 0, counts[progress.StatusInReview])

	assert.Equal(t, []MonthCount{{Month: "2024-01", Count: 1}, {Month: "2024-03", Count: 2}}, overview.CreatedPerMonth)

	require.NotNil(t, overview.MostRecentlyUpdated)
	assert.Equal(t, "B", overview.MostRecentlyUpdated.ID)
}

func TestGetAnalyticsOverview_DoneIsNotActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSource := NewMockCampaignSource(ctrl)
	processor := New(mockSource, observability.NewLogger())

	mockSource.EXPECT().ListCampaignTasks(gomock.Any(), "").Return([]clickup.Task{
		{ID: "A", Name: "a", Status: clickup.TaskStatus{Status: "done"}},
		{ID: "B", Name: "b", Status: clickup.TaskStatus{Status: "complete"}},
		{ID: "C", Name: "c", Status: clickup.TaskStatus{Status: "in review"}},
	}, nil)

	overview, err := processor.GetAnalyticsOverview(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 3, overview.TotalCampaigns)
	assert.Equal(t, 1, overview.ActiveCampaigns)
	for _, s := range overview.Statuses {
		switch s.Status {
		case progress.StatusCompleted:
			assert.Equal(t, 2, s.Count)
		case progress.StatusUnspecified:
			assert.Zero(t, s.Count)
		}
	}
}

func TestGetAnalyticsOverview_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSource := NewMockCampaignSource(ctrl)
	processor := New(mockSource, observability.NewLogger())

	mockSource.EXPECT().ListCampaignTasks(gomock.Any(), "").Return([]clickup.Task{}, nil)

	overview, err := processor.GetAnalyticsOverview(context.Background(), "")
	require.NoError(t, err)
	assert.Zero(t, overview.TotalCampaigns)
	assert.NotNil(t, overview.CreatedPerMonth)
	assert.Nil(t, overview.MostRecentlyUpdated)
}

func TestGetAnalyticsOverview_SourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSource := NewMockCampaignSource(ctrl)
	processor := New(mockSource, observability.NewLogger())

	want := errors.New("tracker down")
	mockSource.EXPECT().ListCampaignTasks(gomock.Any(), "client-7").Return(nil, want)

	_, err := processor.GetAnalyticsOverview(context.Background(), "client-7")
	assert.ErrorIs(t, err, want)
}
