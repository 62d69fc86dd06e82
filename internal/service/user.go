package service

import (
	"ecocycle/internal/models"
	"ecocycle/internal/store"
)

// RegisterInput carries the registration form. Every field is required.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
	State    string `json:"state"`
	Country  string `json:"country"`
	Contact  string `json:"contact"`
}

// UserUpdates holds the admin-editable user fields. Nil means "leave as is".
// Id, email and password are immutable through this path.
type UserUpdates struct {
	Name    *string `json:"name"`
	Contact *string `json:"contact"`
	Address *string `json:"address"`
	State   *string `json:"state"`
	Country *string `json:"country"`
}

type UserService struct {
	store store.Store
}

func NewUserService(s store.Store) *UserService {
	return &UserService{store: s}
}

// Register validates the form, enforces email uniqueness (case-sensitive
// exact match) and stores the new user. Returns the generated id.
func (s *UserService) Register(in RegisterInput) (string, error) {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", in.Name},
		{"email", in.Email},
		{"password", in.Password},
		{"address", in.Address},
		{"state", in.State},
		{"country", in.Country},
		{"contact", in.Contact},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return "", missingFields(missing...)
	}

	var id string
	err := s.store.Update(func(doc *models.Document) error {
		for _, u := range doc.Users {
			if u.Email == in.Email {
				return ErrDuplicateEmail
			}
		}
		var err error
		id, err = newID(func(candidate string) bool {
			_, exists := doc.Users[candidate]
			return exists
		})
		if err != nil {
			return err
		}
		doc.Users[id] = models.User{
			ID:       id,
			Name:     in.Name,
			Email:    in.Email,
			Password: in.Password,
			Address:  in.Address,
			State:    in.State,
			Country:  in.Country,
			Contact:  in.Contact,
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// Login matches email and password against the stored record. Unknown email
// and wrong password fail identically so callers cannot enumerate accounts.
func (s *UserService) Login(email, password string) (models.User, error) {
	doc, err := s.store.Load()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range doc.Users {
		if u.Email == email && u.Password == password {
			return u, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// Update applies the allow-listed fields to an existing user.
func (s *UserService) Update(id string, updates UserUpdates) (models.User, error) {
	var updated models.User
	err := s.store.Update(func(doc *models.Document) error {
		user, ok := doc.Users[id]
		if !ok {
			return notFound("User")
		}
		if updates.Name != nil {
			user.Name = *updates.Name
		}
		if updates.Contact != nil {
			user.Contact = *updates.Contact
		}
		if updates.Address != nil {
			user.Address = *updates.Address
		}
		if updates.State != nil {
			user.State = *updates.State
		}
		if updates.Country != nil {
			user.Country = *updates.Country
		}
		doc.Users[id] = user
		updated = user
		return nil
	})
	if err != nil {
		return models.User{}, err
	}
	return updated, nil
}

// Delete removes the user and cascades to every request and feedback record
// they own, all within one save.
func (s *UserService) Delete(id string) error {
	return s.store.Update(func(doc *models.Document) error {
		if _, ok := doc.Users[id]; !ok {
			return notFound("User")
		}
		delete(doc.Users, id)

		kept := doc.Requests[:0]
		for _, r := range doc.Requests {
			if r.UserID != id {
				kept = append(kept, r)
			}
		}
		doc.Requests = kept

		keptFb := doc.Feedback[:0]
		for _, f := range doc.Feedback {
			if f.UserID != id {
				keptFb = append(keptFb, f)
			}
		}
		doc.Feedback = keptFb
		return nil
	})
}

// ListAll returns the full user mapping with passwords stripped.
func (s *UserService) ListAll() (map[string]models.PublicUser, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	users := make(map[string]models.PublicUser, len(doc.Users))
	for id, u := range doc.Users {
		users[id] = u.Sanitized()
	}
	return users, nil
}
