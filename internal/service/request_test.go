package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecocycle/internal/models"
)

func TestSubmitCreatesPendingRequest(t *testing.T) {
	s := newTestStore(t)
	users := NewUserService(s)
	requests := NewRequestService(s)
	userID := registerTestUser(t, users, "asha@example.com")

	created, err := requests.Submit(userID, "plastic", 4.5)
	require.NoError(t, err)
	assert.Len(t, created.ID, 6)
	assert.Equal(t, userID, created.UserID)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Zero(t, created.Amount)
	assert.False(t, created.Accomplished)
	assert.NotEmpty(t, created.Date)
}

func TestSubmitValidation(t *testing.T) {
	s := newTestStore(t)
	users := NewUserService(s)
	requests := NewRequestService(s)
	userID := registerTestUser(t, users, "asha@example.com")

	cases := []struct {
		name      string
		userID    string
		wasteType string
		kg        float64
	}{
		{"empty type", userID, "", 3},
		{"zero kg", userID, "plastic", 0},
		{"negative kg", userID, "plastic", -2},
		{"empty userId", "", "plastic", 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := requests.Submit(tc.userID, tc.wasteType, tc.kg)
			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestSubmitUnknownUserLeavesStoreUnchanged(t *testing.T) {
	s := newTestStore(t)
	requests := NewRequestService(s)

	_, err := requests.Submit("zzzzzz", "plastic", 3)
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := requests.ListAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestListForUserInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	users := NewUserService(s)
	requests := NewRequestService(s)
	userA := registerTestUser(t, users, "a@example.com")
	userB := registerTestUser(t, users, "b@example.com")

	first, err := requests.Submit(userA, "plastic", 1)
	require.NoError(t, err)
	_, err = requests.Submit(userB, "glass", 2)
	require.NoError(t, err)
	second, err := requests.Submit(userA, "paper", 3)
	require.NoError(t, err)

	mine, err := requests.ListForUser(userA)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, first.ID, mine[0].ID)
	assert.Equal(t, second.ID, mine[1].ID)

	none, err := requests.ListForUser("zzzzzz")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestApproveSetsAmountDeclineKeepsIt(t *testing.T) {
	s := newTestStore(t)
	users := NewUserService(s)
	requests := NewRequestService(s)
	userID := registerTestUser(t, users, "asha@example.com")
	created, err := requests.Submit(userID, "plastic", 4)
	require.NoError(t, err)

	approved := models.StatusApproved
	amount := 25.0
	updated, err := requests.UpdateStatus(created.ID, RequestUpdates{Status: &approved, Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, updated.Status)
	assert.Equal(t, 25.0, updated.Amount)

	declined := models.StatusDeclined
	updated, err = requests.UpdateStatus(created.ID, RequestUpdates{Status: &declined})
	require.NoError(t, err)
	assert.Equal(t, models.StatusDeclined, updated.Status)
	assert.Equal(t, 25.0, updated.Amount)
}

func TestAmountIgnoredWithoutApproval(t *testing.T) {
	s := newTestStore(t)
	users := NewUserService(s)
	requests := NewRequestService(s)
	userID := registerTestUser(t, users, "asha@example.com")
	created, err := requests.Submit(userID, "plastic", 4)
	require.NoError(t, err)

	amount := 99.0
	updated, err := requests.UpdateStatus(created.ID, RequestUpdates{Amount: &amount})
	require.NoError(t, err)
	assert.Zero(t, updated.Amount)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	s := newTestStore(t)
	users := NewUserService(s)
	requests := NewRequestService(s)
	userID := registerTestUser(t, users, "asha@example.com")
	created, err := requests.Submit(userID, "plastic", 4)
	require.NoError(t, err)

	bogus := "recycled"
	_, err = requests.UpdateStatus(created.ID, RequestUpdates{Status: &bogus})
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestUpdateStatusUnknownRequest(t *testing.T) {
	requests := NewRequestService(newTestStore(t))
	approved := models.StatusApproved
	_, err := requests.UpdateStatus("zzzzzz", RequestUpdates{Status: &approved})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccomplishedDoubleToggle(t *testing.T) {
	s := newTestStore(t)
	users := NewUserService(s)
	requests := NewRequestService(s)
	userID := registerTestUser(t, users, "asha@example.com")
	created, err := requests.Submit(userID, "plastic", 4)
	require.NoError(t, err)

	on, off := true, false
	updated, err := requests.UpdateStatus(created.ID, RequestUpdates{Accomplished: &on})
	require.NoError(t, err)
	assert.True(t, updated.Accomplished)

	updated, err = requests.UpdateStatus(created.ID, RequestUpdates{Accomplished: &off})
	require.NoError(t, err)
	assert.False(t, updated.Accomplished)
}

func TestUpdateStatusNoFieldsIsNoOp(t *testing.T) {
	s := newTestStore(t)
	users := NewUserService(s)
	requests := NewRequestService(s)
	userID := registerTestUser(t, users, "asha@example.com")
	created, err := requests.Submit(userID, "plastic", 4)
	require.NoError(t, err)

	updated, err := requests.UpdateStatus(created.ID, RequestUpdates{})
	require.NoError(t, err)
	assert.Equal(t, created, updated)
}

func TestConcurrentSubmissionsBothPersist(t *testing.T) {
	s := newTestStore(t)
	users := NewUserService(s)
	requests := NewRequestService(s)
	userID := registerTestUser(t, users, "asha@example.com")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	types := []string{"plastic", "glass"}
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = requests.Submit(userID, types[i], float64(i+1))
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	all, err := requests.ListForUser(userID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
