package notes

import (
	"time"

	"github.com/calendar-todo/backend/internal/model"
)

type noteDTO struct {
	ID        int64
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func mapToNote(dto *noteDTO) *model.Note {
	return &model.Note{
		ID: dto.ID,
		NoteCreate: model.NoteCreate{
			Title:   dto.Title,
			Content: dto.Content,
		},
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	}
}

func mapToNotes(dtos []*noteDTO) []*model.Note {
	res := make([]*model.Note, len(dtos))
	for i, d := range dtos {
		res[i] = mapToNote(d)
	}

	return res
}
