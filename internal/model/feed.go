package model

import "time"

type HolidayFeedCreate struct {
	URL       string
	Name      string
	IsVisible bool
}

type HolidayFeed struct {
	ID int64
	HolidayFeedCreate
	LastSyncTime *time.Time
	SyncError    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
