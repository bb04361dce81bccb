package notes

import "github.com/calendar-todo/backend/internal/database"

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select("id",
		"title",
		"content",
		"created_at",
		"updated_at",
	).
	From(database.NotesTable)
