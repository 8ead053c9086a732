package session

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antonvlasov/voicenotes/internal/blob"
	"github.com/antonvlasov/voicenotes/internal/logging"
	"github.com/antonvlasov/voicenotes/internal/models"
	"github.com/antonvlasov/voicenotes/internal/store"

	_ "modernc.org/sqlite"
)

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func setup(t *testing.T) (*Service, *store.Store, blob.Repository) {
	t.Helper()
	db, err := blob.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := blob.NewSQLiteRepository(db)
	st := store.New()
	return New(st, repo, logging.NewDefault(testWriter{t})), st, repo
}

func putJSON(t *testing.T, repo blob.Repository, key string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, repo.Set(context.Background(), key, data))
}

func TestBootstrap_EmptyStorage(t *testing.T) {
	svc, st, _ := setup(t)

	svc.Bootstrap(context.Background())

	snap := st.State()
	assert.False(t, snap.Auth.IsAuthenticated)
	assert.Empty(t, snap.DB.Recordings)
	assert.False(t, snap.DB.Loading, "loading must clear even with nothing stored")
}

func TestBootstrap_FiltersRecordingsToSessionUser(t *testing.T) {
	svc, st, repo := setup(t)

	userA := models.User{ID: "a", UserName: "ann", Email: "ann@example.com"}
	putJSON(t, repo, blob.KeySession, userA)
	putJSON(t, repo, blob.KeyRecordings, []models.Recording{
		{URI: "r1", UserID: "a", Name: "one"},
		{URI: "r2", UserID: "b", Name: "two"},
		{URI: "r3", UserID: "a", Name: "three"},
		{URI: "r4", UserID: "b", Name: "four"},
		{URI: "r5", UserID: "b", Name: "five"},
	})

	svc.Bootstrap(context.Background())

	snap := st.State()
	require.True(t, snap.Auth.IsAuthenticated)
	assert.Equal(t, "a", snap.Auth.User.ID)

	require.Len(t, snap.DB.Recordings, 2)
	assert.Equal(t, "r1", snap.DB.Recordings[0].URI)
	assert.Equal(t, "r3", snap.DB.Recordings[1].URI)
}

func TestBootstrap_NoSessionUser_IgnoresRecordings(t *testing.T) {
	svc, st, repo := setup(t)

	putJSON(t, repo, blob.KeyRecordings, []models.Recording{
		{URI: "r1", UserID: "a"},
	})

	svc.Bootstrap(context.Background())

	snap := st.State()
	assert.False(t, snap.Auth.IsAuthenticated)
	assert.Empty(t, snap.DB.Recordings)
}

func TestBootstrap_MalformedUserBlob_DegradesToEmptyState(t *testing.T) {
	svc, st, repo := setup(t)

	require.NoError(t, repo.Set(context.Background(), blob.KeySession, []byte("{not json")))

	svc.Bootstrap(context.Background())

	snap := st.State()
	assert.False(t, snap.Auth.IsAuthenticated)
	assert.Empty(t, snap.DB.Recordings)
	assert.False(t, snap.DB.Loading)
}

func TestBootstrap_MalformedRecordingsBlob_EmptyList(t *testing.T) {
	svc, st, repo := setup(t)

	putJSON(t, repo, blob.KeySession, models.User{ID: "a"})
	require.NoError(t, repo.Set(context.Background(), blob.KeyRecordings, []byte("[broken")))

	svc.Bootstrap(context.Background())

	snap := st.State()
	assert.True(t, snap.Auth.IsAuthenticated)
	assert.Empty(t, snap.DB.Recordings)
	assert.False(t, snap.DB.Loading)
}
