package models

// Feedback is a free-form message from a user. Reply is absent until an
// admin responds; a later admin reply overwrites the previous one.
type Feedback struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Text   string `json:"text"`
	Date   string `json:"date"`
	Reply  string `json:"reply,omitempty"`
}
