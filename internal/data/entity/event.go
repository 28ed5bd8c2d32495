package entity

import "time"

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

type Event struct {
	Base
	Title       string      `db:"title"`
	Description *string     `db:"description"`
	Location    string      `db:"location"`
	StartDate   time.Time   `db:"start_date"`
	EndDate     time.Time   `db:"end_date"`
	Status      EventStatus `db:"status"`
}
