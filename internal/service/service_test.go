package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"ecocycle/internal/store"
)

func newTestStore(t *testing.T) *store.FileStore {
	t.Helper()
	s, err := store.NewFileStore(filepath.Join(t.TempDir(), "progress.json"))
	require.NoError(t, err)
	return s
}

func registerTestUser(t *testing.T, users *UserService, email string) string {
	t.Helper()
	id, err := users.Register(RegisterInput{
		Name:     "Test User",
		Email:    email,
		Password: "secret",
		Address:  "1 Test Lane",
		State:    "Teststate",
		Country:  "Testland",
		Contact:  "555-0100",
	})
	require.NoError(t, err)
	return id
}
