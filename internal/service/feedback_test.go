package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackSubmitAndList(t *testing.T) {
	s := newTestStore(t)
	users := NewUserService(s)
	feedback := NewFeedbackService(s, false)
	userID := registerTestUser(t, users, "asha@example.com")

	created, err := feedback.Submit(userID, "pickup was late")
	require.NoError(t, err)
	assert.Len(t, created.ID, 6)
	assert.Empty(t, created.Reply)
	assert.NotEmpty(t, created.Date)

	mine, err := feedback.ListForUser(userID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "pickup was late", mine[0].Text)
}

func TestFeedbackSubmitValidation(t *testing.T) {
	feedback := NewFeedbackService(newTestStore(t), false)

	_, err := feedback.Submit("u1", "")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "text")
}

func TestFeedbackUserCheckToggle(t *testing.T) {
	s := newTestStore(t)

	// Off: matches the original, which inserts without a user lookup.
	lenient := NewFeedbackService(s, false)
	_, err := lenient.Submit("zzzzzz", "anyone listening?")
	assert.NoError(t, err)

	// On: submission behaves like request submission.
	strict := NewFeedbackService(s, true)
	_, err = strict.Submit("zzzzzz", "anyone listening?")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReplySetAndOverwrite(t *testing.T) {
	s := newTestStore(t)
	users := NewUserService(s)
	feedback := NewFeedbackService(s, false)
	userID := registerTestUser(t, users, "asha@example.com")
	created, err := feedback.Submit(userID, "pickup was late")
	require.NoError(t, err)

	replied, err := feedback.Reply(created.ID, "sorry, rescheduled")
	require.NoError(t, err)
	assert.Equal(t, "sorry, rescheduled", replied.Reply)

	replied, err = feedback.Reply(created.ID, "driver dispatched")
	require.NoError(t, err)
	assert.Equal(t, "driver dispatched", replied.Reply)
}

func TestReplyValidationAndUnknownID(t *testing.T) {
	feedback := NewFeedbackService(newTestStore(t), false)

	_, err := feedback.Reply("f1", "")
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)

	_, err = feedback.Reply("zzzzzz", "hello")
	assert.ErrorIs(t, err, ErrNotFound)
}
