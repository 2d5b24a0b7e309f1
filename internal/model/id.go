package model

import "github.com/google/uuid"

// newID returns a time-ordered UUID so rows sort in insertion order by id.
func newID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
