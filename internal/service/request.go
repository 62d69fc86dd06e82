package service

import (
	"fmt"
	"time"

	"ecocycle/internal/models"
	"ecocycle/internal/store"
)

// RequestUpdates carries the admin-editable request fields. Nil means
// "leave as is"; Amount is only applied when the same call approves.
type RequestUpdates struct {
	Status       *string  `json:"status"`
	Amount       *float64 `json:"amount"`
	Accomplished *bool    `json:"accomplished"`
}

type RequestService struct {
	store store.Store
}

func NewRequestService(s store.Store) *RequestService {
	return &RequestService{store: s}
}

// Submit creates a pending request for an existing user. Nothing is saved
// when validation or the user lookup fails.
func (s *RequestService) Submit(userID, wasteType string, kg float64) (models.WasteRequest, error) {
	var missing []string
	if userID == "" {
		missing = append(missing, "userId")
	}
	if wasteType == "" {
		missing = append(missing, "type")
	}
	if len(missing) > 0 {
		return models.WasteRequest{}, missingFields(missing...)
	}
	if kg <= 0 {
		return models.WasteRequest{}, &ValidationError{Fields: []string{"kg must be a positive number"}}
	}

	var created models.WasteRequest
	err := s.store.Update(func(doc *models.Document) error {
		if _, ok := doc.Users[userID]; !ok {
			return notFound("User")
		}
		id, err := newID(func(candidate string) bool {
			for _, r := range doc.Requests {
				if r.ID == candidate {
					return true
				}
			}
			return false
		})
		if err != nil {
			return err
		}
		created = models.WasteRequest{
			ID:           id,
			UserID:       userID,
			Type:         wasteType,
			Kg:           kg,
			Status:       models.StatusPending,
			Amount:       0,
			Date:         time.Now().Format(dateFormat),
			Accomplished: false,
		}
		doc.Requests = append(doc.Requests, created)
		return nil
	})
	if err != nil {
		return models.WasteRequest{}, err
	}
	return created, nil
}

// ListForUser returns the user's requests in insertion order. No requests
// is an empty slice, not an error.
func (s *RequestService) ListForUser(userID string) ([]models.WasteRequest, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	requests := []models.WasteRequest{}
	for _, r := range doc.Requests {
		if r.UserID == userID {
			requests = append(requests, r)
		}
	}
	return requests, nil
}

func (s *RequestService) ListAll() ([]models.WasteRequest, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if doc.Requests == nil {
		return []models.WasteRequest{}, nil
	}
	return doc.Requests, nil
}

// UpdateStatus applies an admin decision. A status outside the known set is
// rejected; the amount is assigned only when this call sets the status to
// approved, and a decline leaves a previously assigned amount alone. With
// all fields absent the call is a no-op returning the unchanged record.
func (s *RequestService) UpdateStatus(requestID string, updates RequestUpdates) (models.WasteRequest, error) {
	if updates.Status != nil && !models.ValidStatus(*updates.Status) {
		return models.WasteRequest{}, &ValidationError{
			Fields: []string{fmt.Sprintf("unknown status %q", *updates.Status)},
		}
	}

	var updated models.WasteRequest
	err := s.store.Update(func(doc *models.Document) error {
		for i := range doc.Requests {
			if doc.Requests[i].ID != requestID {
				continue
			}
			r := &doc.Requests[i]
			if updates.Status != nil {
				r.Status = *updates.Status
				if *updates.Status == models.StatusApproved && updates.Amount != nil {
					r.Amount = *updates.Amount
				}
			}
			if updates.Accomplished != nil {
				r.Accomplished = *updates.Accomplished
			}
			updated = *r
			return nil
		}
		return notFound("Request")
	})
	if err != nil {
		return models.WasteRequest{}, err
	}
	return updated, nil
}
