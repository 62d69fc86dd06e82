package models

// AdminCredentials is the stored admin record. No handler reads it; it is
// seeded on first run and kept for compatibility with the document shape.
type AdminCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Document is the complete persisted state: every collection lives in one
// JSON file that the store loads and saves wholesale.
type Document struct {
	Users    map[string]User  `json:"users"`
	Requests []WasteRequest   `json:"requests"`
	Feedback []Feedback       `json:"feedback"`
	Admin    AdminCredentials `json:"admin"`
}

// NewDocument returns an empty document with the placeholder admin record.
func NewDocument() *Document {
	return &Document{
		Users:    map[string]User{},
		Requests: []WasteRequest{},
		Feedback: []Feedback{},
		Admin: AdminCredentials{
			Email:    "admin@ecocycle.com",
			Password: "admin",
		},
	}
}
