package model

import "time"

type NoteCreate struct {
	Title   string
	Content string
}

type Note struct {
	ID int64
	NoteCreate
	CreatedAt time.Time
	UpdatedAt time.Time
}
