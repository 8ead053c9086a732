package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antonvlasov/voicenotes/internal/models"
)

func rec(uri, name string) models.Recording {
	return models.Recording{URI: uri, Name: name, Date: "2024-01-02T10:00:00Z", Duration: "00:10"}
}

func TestNew_InitialState(t *testing.T) {
	s := New()
	st := s.State()

	assert.Nil(t, st.Auth.User)
	assert.False(t, st.Auth.IsAuthenticated)
	assert.Empty(t, st.DB.Recordings)
	assert.True(t, st.DB.Loading)
	assert.Empty(t, st.DB.Err)
}

func TestSetUser_AuthenticatedFollowsUser(t *testing.T) {
	s := New()

	s.Dispatch(SetUser{User: &models.User{ID: "u1", Email: "a@b.c"}})
	st := s.State()
	require.NotNil(t, st.Auth.User)
	assert.True(t, st.Auth.IsAuthenticated)
	assert.Equal(t, "u1", st.Auth.User.ID)

	s.Dispatch(SetUser{User: nil})
	st = s.State()
	assert.Nil(t, st.Auth.User)
	assert.False(t, st.Auth.IsAuthenticated)
}

func TestLoginLogout(t *testing.T) {
	s := New()

	s.Dispatch(Login{User: models.User{ID: "u1", UserName: "ann"}})
	st := s.State()
	require.True(t, st.Auth.IsAuthenticated)
	assert.Equal(t, "ann", st.Auth.User.UserName)

	s.Dispatch(Logout{})
	st = s.State()
	assert.False(t, st.Auth.IsAuthenticated)
	assert.Nil(t, st.Auth.User)
}

func TestLogout_EmptiesRecordingsView(t *testing.T) {
	s := New()

	s.Dispatch(Login{User: models.User{ID: "u1"}})
	s.Dispatch(AddRecording{Recording: rec("r1", "one")})
	s.Dispatch(AddRecording{Recording: rec("r2", "two")})

	s.Dispatch(Logout{})

	st := s.State()
	assert.False(t, st.Auth.IsAuthenticated)
	assert.Empty(t, st.DB.Recordings)
}

func TestAddThenDelete_ExcludesExactlyThatEntryPreservingOrder(t *testing.T) {
	s := New()

	s.Dispatch(AddRecording{Recording: rec("u1", "one")})
	s.Dispatch(AddRecording{Recording: rec("u2", "two")})
	s.Dispatch(AddRecording{Recording: rec("u3", "three")})

	s.Dispatch(DeleteRecording{URI: "u2"})

	got := s.State().DB.Recordings
	require.Len(t, got, 2)
	assert.Equal(t, "u1", got[0].URI)
	assert.Equal(t, "u3", got[1].URI)
}

func TestDeleteRecording_RemovesAllMatches(t *testing.T) {
	s := New()

	// No duplicate-URI check on add, so duplicates are possible.
	s.Dispatch(AddRecording{Recording: rec("dup", "a")})
	s.Dispatch(AddRecording{Recording: rec("dup", "b")})
	s.Dispatch(AddRecording{Recording: rec("keep", "c")})

	s.Dispatch(DeleteRecording{URI: "dup"})

	got := s.State().DB.Recordings
	require.Len(t, got, 1)
	assert.Equal(t, "keep", got[0].URI)
}

func TestSetRecordingData_MergesIntoFirstMatch(t *testing.T) {
	s := New()
	s.Dispatch(AddRecording{Recording: rec("u1", "")})
	s.Dispatch(AddRecording{Recording: rec("u2", "")})

	name := "standup notes"
	s.Dispatch(SetRecordingData{URI: "u2", Patch: RecordingPatch{Name: &name}})

	got := s.State().DB.Recordings
	assert.Equal(t, "", got[0].Name)
	assert.Equal(t, "standup notes", got[1].Name)
	// Untouched fields survive the merge.
	assert.Equal(t, "00:10", got[1].Duration)
}

func TestSetRecordingData_NoMatchIsNoOp(t *testing.T) {
	s := New()
	s.Dispatch(AddRecording{Recording: rec("u1", "x")})

	name := "y"
	s.Dispatch(SetRecordingData{URI: "absent", Patch: RecordingPatch{Name: &name}})

	got := s.State().DB.Recordings
	require.Len(t, got, 1)
	assert.Equal(t, "x", got[0].Name)
}

func TestStatusFlags(t *testing.T) {
	s := New()

	s.Dispatch(SetLoading{Loading: false})
	assert.False(t, s.State().DB.Loading)

	s.Dispatch(SetError{Message: "failed to load"})
	assert.Equal(t, "failed to load", s.State().DB.Err)

	s.Dispatch(ClearError{})
	assert.Empty(t, s.State().DB.Err)
}

func TestSubscribe_NotifiedInOrderBeforeDispatchReturns(t *testing.T) {
	s := New()

	var order []int
	s.Subscribe(func() { order = append(order, 1) })
	s.Subscribe(func() { order = append(order, 2) })

	s.Dispatch(SetLoading{Loading: false})

	assert.Equal(t, []int{1, 2}, order)
}

func TestSubscribe_SubscriberSeesNewState(t *testing.T) {
	s := New()

	var seen int
	s.Subscribe(func() { seen = len(s.State().DB.Recordings) })

	s.Dispatch(AddRecording{Recording: rec("u1", "")})
	assert.Equal(t, 1, seen)
}

func TestUnsubscribe_StopsNotifications(t *testing.T) {
	s := New()

	calls := 0
	unsub := s.Subscribe(func() { calls++ })

	s.Dispatch(SetLoading{Loading: false})
	unsub()
	unsub() // second call is harmless
	s.Dispatch(SetLoading{Loading: true})

	assert.Equal(t, 1, calls)
}

func TestState_SnapshotIsDefensiveCopy(t *testing.T) {
	s := New()
	s.Dispatch(AddRecording{Recording: rec("u1", "orig")})
	s.Dispatch(Login{User: models.User{ID: "u", UserName: "ann"}})

	snap := s.State()
	snap.DB.Recordings[0].Name = "mutated"
	snap.Auth.User.UserName = "mutated"

	st := s.State()
	assert.Equal(t, "orig", st.DB.Recordings[0].Name)
	assert.Equal(t, "ann", st.Auth.User.UserName)
}

func TestUnknownActionLeavesSlicesUnchanged(t *testing.T) {
	s := New()
	s.Dispatch(AddRecording{Recording: rec("u1", "x")})
	before := s.State()

	// An auth action must not disturb the db slice and vice versa.
	s.Dispatch(Login{User: models.User{ID: "u"}})

	after := s.State()
	assert.Equal(t, before.DB.Recordings, after.DB.Recordings)
}
