// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// StatusMaxLength is the maximum number of characters a status may hold.
const StatusMaxLength = 140

// Status is a short message published by a user.
// Every status is exclusively owned by the user referenced by UserID and is
// removed together with that user.
type Status struct {
	ID int64 `json:"id"`

	// UserID references the owning user.
	UserID int64 `json:"user_id"`

	// Content is the message text.
	Content string `json:"content"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Status model.
func (s Status) TableName() string {
	return "statuses"
}
