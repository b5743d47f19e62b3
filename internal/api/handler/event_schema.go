package handler

import "time"

type eventRequest struct {
	Title       string    `json:"title"       validate:"required"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"        validate:"required"`
}
