package widget

import (
	"time"

	"github.com/google/uuid"
)

// SessionState classifies the outcome of a widget build.
type SessionState string

const (
	SESSION_READY SessionState = "ready"
	SESSION_EMPTY SessionState = "empty"
	SESSION_ERROR SessionState = "error"
)

// Session is one widget build: the map model plus its outcome. Sessions are
// independent values so concurrent builds never share marker or map state,
// and disposing one cannot leak into another.
type Session struct {
	ID        string       `json:"id"`
	State     SessionState `json:"state"`
	Model     *MapModel    `json:"model,omitempty"`
	CreatedAt time.Time    `json:"created_at"`

	err error
}

// NewReadySession wraps a built map model.
func NewReadySession(model *MapModel) *Session {
	return &Session{
		ID:        uuid.NewString(),
		State:     SESSION_READY,
		Model:     model,
		CreatedAt: time.Now(),
	}
}

// NewEmptySession records a build that found nothing to display. Not an
// error: the widget simply does not mount.
func NewEmptySession() *Session {
	return &Session{
		ID:        uuid.NewString(),
		State:     SESSION_EMPTY,
		CreatedAt: time.Now(),
	}
}

// NewErrorSession records a failed build with its cause.
func NewErrorSession(err error) *Session {
	return &Session{
		ID:        uuid.NewString(),
		State:     SESSION_ERROR,
		CreatedAt: time.Now(),
		err:       err,
	}
}

// Err returns the build failure, if any.
func (s *Session) Err() error {
	return s.err
}

// Markers returns the session's marker set, empty unless ready.
func (s *Session) Markers() []Marker {
	if s.Model == nil {
		return nil
	}
	return s.Model.Markers
}
