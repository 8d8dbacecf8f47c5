package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnly/learnly-go/enums"
	"github.com/learnly/learnly-go/models"
)

func studentTokenResponse() models.TokenResponse {
	return models.TokenResponse{
		AccessToken:  "access-A",
		RefreshToken: "refresh-A",
		TokenType:    "bearer",
		User: &models.User{
			ID:       1,
			Email:    "ada@learnly.example",
			FullName: "Ada Student",
			Role:     enums.RoleStudent,
		},
	}
}

func TestSetAuthThenLogout(t *testing.T) {
	store := NewStore(nil)

	store.SetAuth(models.TokenResponse{
		AccessToken:  "X",
		RefreshToken: "Y",
		User:         &models.User{ID: 2, Role: enums.RoleAdmin},
	})

	sess := store.Session()
	require.True(t, sess.LoggedIn())
	assert.Equal(t, "X", sess.AccessToken)
	assert.Equal(t, "Y", sess.RefreshToken)
	assert.Equal(t, enums.RoleAdmin, sess.User.Role)

	store.Logout()

	sess = store.Session()
	assert.Nil(t, sess.User)
	assert.Empty(t, sess.AccessToken)
	assert.Empty(t, sess.RefreshToken)
	assert.False(t, sess.LoggedIn())

	// Logout is idempotent.
	store.Logout()
	assert.False(t, store.Session().LoggedIn())
}

func TestUserNonNilIffTokenNonEmpty(t *testing.T) {
	store := NewStore(nil)

	mutations := []func(){
		func() { store.SetAuth(studentTokenResponse()) },
		func() { store.UpdateUser(models.UserPatch{FullName: ptr("Ada Lovelace")}) },
		func() { store.Logout() },
		func() { store.UpdateUser(models.UserPatch{FullName: ptr("Ghost")}) },
		func() { store.SetAuth(studentTokenResponse()) },
	}

	for _, mutate := range mutations {
		mutate()
		sess := store.Session()
		assert.Equal(t, sess.User != nil, sess.AccessToken != "",
			"user and access token must be set or cleared together")
	}
}

func TestUpdateUserMergesPartial(t *testing.T) {
	store := NewStore(nil)
	store.SetAuth(studentTokenResponse())

	score := 87
	store.UpdateUser(models.UserPatch{CompetencyScore: &score})

	sess := store.Session()
	require.NotNil(t, sess.User)
	require.NotNil(t, sess.User.CompetencyScore)
	assert.Equal(t, 87, *sess.User.CompetencyScore)
	// Untouched fields survive the merge.
	assert.Equal(t, "Ada Student", sess.User.FullName)
	assert.Equal(t, enums.RoleStudent, sess.User.Role)
}

func TestUpdateUserIsNoOpWhenLoggedOut(t *testing.T) {
	store := NewStore(nil)

	store.UpdateUser(models.UserPatch{FullName: ptr("Nobody")})

	sess := store.Session()
	assert.Nil(t, sess.User, "a patch must not manufacture a user without tokens")
	assert.False(t, sess.LoggedIn())
}

func TestSessionSnapshotIsACopy(t *testing.T) {
	store := NewStore(nil)
	store.SetAuth(studentTokenResponse())

	snap := store.Session()
	snap.User.FullName = "Mutated"

	assert.Equal(t, "Ada Student", store.Session().User.FullName)
}

func TestStoreRehydratesFromFile(t *testing.T) {
	dir := t.TempDir()

	storage, err := NewFileStorage(dir)
	require.NoError(t, err)

	first := NewStore(storage)
	first.SetAuth(studentTokenResponse())

	// A second store over the same directory sees the persisted session.
	storage2, err := NewFileStorage(dir)
	require.NoError(t, err)
	second := NewStore(storage2)

	sess := second.Session()
	require.True(t, sess.LoggedIn())
	assert.Equal(t, "access-A", sess.AccessToken)
	assert.Equal(t, "ada@learnly.example", sess.User.Email)
}

func TestLogoutClearsPersistedRecord(t *testing.T) {
	dir := t.TempDir()

	storage, err := NewFileStorage(dir)
	require.NoError(t, err)

	store := NewStore(storage)
	store.SetAuth(studentTokenResponse())
	store.Logout()

	_, err = os.Stat(filepath.Join(dir, storageFile))
	assert.True(t, os.IsNotExist(err))

	storage2, err := NewFileStorage(dir)
	require.NoError(t, err)
	assert.False(t, NewStore(storage2).Session().LoggedIn())
}

func TestCorruptRecordStartsLoggedOut(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, storageFile), []byte("{not json"), 0o600))

	storage, err := NewFileStorage(dir)
	require.NoError(t, err)

	store := NewStore(storage)
	assert.False(t, store.Session().LoggedIn())
}

func ptr[T any](v T) *T { return &v }
