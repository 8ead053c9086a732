package store

import "github.com/antonvlasov/voicenotes/internal/models"

// reduceAuth is the pure reducer for the auth slice. Actions it does not
// recognize leave the slice unchanged.
func reduceAuth(st AuthState, a Action) AuthState {
	switch act := a.(type) {
	case Login:
		u := act.User
		return AuthState{User: &u, IsAuthenticated: true}
	case Logout:
		return AuthState{}
	case SetUser:
		if act.User == nil {
			return AuthState{}
		}
		u := *act.User
		return AuthState{User: &u, IsAuthenticated: true}
	default:
		return st
	}
}

// reduceDB is the pure reducer for the db slice. List-changing actions
// work copy-on-write so previously handed-out snapshots stay valid.
func reduceDB(st DBState, a Action) DBState {
	switch act := a.(type) {
	case SetRecordings:
		next := st
		next.Recordings = make([]models.Recording, len(act.List))
		copy(next.Recordings, act.List)
		return next

	case AddRecording:
		next := st
		next.Recordings = make([]models.Recording, 0, len(st.Recordings)+1)
		next.Recordings = append(next.Recordings, st.Recordings...)
		next.Recordings = append(next.Recordings, act.Recording)
		return next

	case DeleteRecording:
		next := st
		next.Recordings = make([]models.Recording, 0, len(st.Recordings))
		for _, r := range st.Recordings {
			if r.URI != act.URI {
				next.Recordings = append(next.Recordings, r)
			}
		}
		return next

	case SetRecordingData:
		next := st
		next.Recordings = make([]models.Recording, len(st.Recordings))
		copy(next.Recordings, st.Recordings)
		for i := range next.Recordings {
			if next.Recordings[i].URI != act.URI {
				continue
			}
			if act.Patch.Name != nil {
				next.Recordings[i].Name = *act.Patch.Name
			}
			if act.Patch.Date != nil {
				next.Recordings[i].Date = *act.Patch.Date
			}
			if act.Patch.Duration != nil {
				next.Recordings[i].Duration = *act.Patch.Duration
			}
			break
		}
		return next

	case SetLoading:
		next := st
		next.Loading = act.Loading
		return next

	case SetError:
		next := st
		next.Err = act.Message
		return next

	case ClearError:
		next := st
		next.Err = ""
		return next

	case Logout:
		// The recordings list is the session user's view; no session, no
		// view. Leaving it populated would leak into the next session.
		next := st
		next.Recordings = []models.Recording{}
		return next

	default:
		return st
	}
}
