package models

// User is a registered account. The stored record carries the plaintext
// password for login matching and must never leave the process through an
// API response; handlers respond with Sanitized instead.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
	State    string `json:"state"`
	Country  string `json:"country"`
	Contact  string `json:"contact"`
}

// PublicUser is the response view of a User with the password omitted.
type PublicUser struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	State   string `json:"state"`
	Country string `json:"country"`
	Contact string `json:"contact"`
}

func (u User) Sanitized() PublicUser {
	return PublicUser{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Address: u.Address,
		State:   u.State,
		Country: u.Country,
		Contact: u.Contact,
	}
}
