package service

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idLength = 6

// newID generates a short random identifier. taken reports ids already in
// use; a collision at this length is vanishingly unlikely, but regenerating
// keeps the uniqueness invariant unconditional.
func newID(taken func(id string) bool) (string, error) {
	for {
		id, err := gonanoid.New(idLength)
		if err != nil {
			return "", err
		}
		if taken == nil || !taken(id) {
			return id, nil
		}
	}
}

// dateFormat is the calendar-date layout stamped on new records.
const dateFormat = "2006-01-02"
