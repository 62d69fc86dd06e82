package models

// Request statuses. Status transitions are admin-driven; updates are
// validated against this set.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDeclined = "declined"
)

// WasteRequest is a pickup request submitted by a user.
// Amount is the payout assigned on approval; it is not reset when a
// request is later declined.
type WasteRequest struct {
	ID           string  `json:"id"`
	UserID       string  `json:"userId"`
	Type         string  `json:"type"`
	Kg           float64 `json:"kg"`
	Status       string  `json:"status"`
	Amount       float64 `json:"amount"`
	Date         string  `json:"date"`
	Accomplished bool    `json:"accomplished"`
}

// ValidStatus reports whether s is one of the known request statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusDeclined:
		return true
	}
	return false
}
