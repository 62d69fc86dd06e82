package service

import (
	"time"

	"ecocycle/internal/models"
	"ecocycle/internal/store"
)

type FeedbackService struct {
	store store.Store

	// requireUser controls whether Submit verifies the owning user exists.
	// The original behavior is no check, unlike request submission.
	requireUser bool
}

func NewFeedbackService(s store.Store, requireUser bool) *FeedbackService {
	return &FeedbackService{store: s, requireUser: requireUser}
}

// Submit records a feedback message with the current date and no reply.
func (s *FeedbackService) Submit(userID, text string) (models.Feedback, error) {
	var missing []string
	if userID == "" {
		missing = append(missing, "userId")
	}
	if text == "" {
		missing = append(missing, "text")
	}
	if len(missing) > 0 {
		return models.Feedback{}, missingFields(missing...)
	}

	var created models.Feedback
	err := s.store.Update(func(doc *models.Document) error {
		if s.requireUser {
			if _, ok := doc.Users[userID]; !ok {
				return notFound("User")
			}
		}
		id, err := newID(func(candidate string) bool {
			for _, f := range doc.Feedback {
				if f.ID == candidate {
					return true
				}
			}
			return false
		})
		if err != nil {
			return err
		}
		created = models.Feedback{
			ID:     id,
			UserID: userID,
			Text:   text,
			Date:   time.Now().Format(dateFormat),
		}
		doc.Feedback = append(doc.Feedback, created)
		return nil
	})
	if err != nil {
		return models.Feedback{}, err
	}
	return created, nil
}

// ListForUser returns the user's feedback in insertion order.
func (s *FeedbackService) ListForUser(userID string) ([]models.Feedback, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	feedback := []models.Feedback{}
	for _, f := range doc.Feedback {
		if f.UserID == userID {
			feedback = append(feedback, f)
		}
	}
	return feedback, nil
}

func (s *FeedbackService) ListAll() ([]models.Feedback, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if doc.Feedback == nil {
		return []models.Feedback{}, nil
	}
	return doc.Feedback, nil
}

// Reply sets or overwrites the admin reply on a feedback record.
func (s *FeedbackService) Reply(feedbackID, reply string) (models.Feedback, error) {
	var missing []string
	if feedbackID == "" {
		missing = append(missing, "feedbackId")
	}
	if reply == "" {
		missing = append(missing, "reply")
	}
	if len(missing) > 0 {
		return models.Feedback{}, missingFields(missing...)
	}

	var updated models.Feedback
	err := s.store.Update(func(doc *models.Document) error {
		for i := range doc.Feedback {
			if doc.Feedback[i].ID != feedbackID {
				continue
			}
			doc.Feedback[i].Reply = reply
			updated = doc.Feedback[i]
			return nil
		}
		return notFound("Feedback")
	})
	if err != nil {
		return models.Feedback{}, err
	}
	return updated, nil
}
