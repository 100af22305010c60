package services

import "github.com/google/uuid"

// NewSessionID generates the id a new panel session persists its state under
func NewSessionID() string {
	return uuid.New().String()
}
