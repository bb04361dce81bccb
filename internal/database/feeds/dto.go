package feeds

import (
	"time"

	"github.com/calendar-todo/backend/internal/model"
)

type feedDTO struct {
	ID           int64
	URL          string
	Name         string
	IsVisible    bool
	LastSyncTime *time.Time
	SyncError    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func mapToFeed(dto *feedDTO) *model.HolidayFeed {
	return &model.HolidayFeed{
		ID: dto.ID,
		HolidayFeedCreate: model.HolidayFeedCreate{
			URL:       dto.URL,
			Name:      dto.Name,
			IsVisible: dto.IsVisible,
		},
		LastSyncTime: dto.LastSyncTime,
		SyncError:    dto.SyncError,
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
	}
}
