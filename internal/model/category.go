package model

import "time"

type CategoryCreate struct {
	Name   string
	Color  string
	Symbol string
}

type Category struct {
	ID int64
	CategoryCreate
	CreatedAt time.Time
	UpdatedAt time.Time
}
