package categories

import (
	"time"

	"github.com/calendar-todo/backend/internal/model"
)

type categoryDTO struct {
	ID        int64
	Name      string
	Color     string
	Symbol    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func mapToCategory(dto *categoryDTO) *model.Category {
	return &model.Category{
		ID: dto.ID,
		CategoryCreate: model.CategoryCreate{
			Name:   dto.Name,
			Color:  dto.Color,
			Symbol: dto.Symbol,
		},
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	}
}
