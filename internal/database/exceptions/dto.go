package exceptions

import (
	"time"

	"github.com/calendar-todo/backend/internal/model"
)

type exceptionDTO struct {
	ID                  int64
	EventID             int64
	OriginalDate        time.Time
	IsCancelled         bool
	ModifiedTitle       *string
	ModifiedDescription *string
	ModifiedStartTime   *time.Time
	ModifiedEndTime     *time.Time
	ModifiedLocation    *string
	CreatedAt           time.Time
}

func mapToException(dto *exceptionDTO) *model.EventException {
	return &model.EventException{
		ID:                  dto.ID,
		EventID:             dto.EventID,
		OriginalDate:        dto.OriginalDate,
		IsCancelled:         dto.IsCancelled,
		ModifiedTitle:       dto.ModifiedTitle,
		ModifiedDescription: dto.ModifiedDescription,
		ModifiedStartTime:   dto.ModifiedStartTime,
		ModifiedEndTime:     dto.ModifiedEndTime,
		ModifiedLocation:    dto.ModifiedLocation,
		CreatedAt:           dto.CreatedAt,
	}
}
