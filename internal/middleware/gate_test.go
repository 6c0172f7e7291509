package middleware

import (
	"testing"
	"time"

	"pattern_edu_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	now := time.Now()
	idle := 30 * time.Minute

	fresh := &model.Session{ID: "s1", Role: model.Student, LastActivity: now.Add(-time.Minute)}
	stale := &model.Session{ID: "s2", Role: model.Student, LastActivity: now.Add(-idle - time.Second)}
	atEdge := &model.Session{ID: "s3", Role: model.Student, LastActivity: now.Add(-idle)}

	tests := []struct {
		name  string
		sess  *model.Session
		class PathClass
		want  Decision
	}{
		{"no session, private path", nil, PathPrivate, Decision{Action: ActionLoginRedirect}},
		{"no session, auth page", nil, PathAuthPage, Decision{Action: ActionAllow}},
		{"no session, public path", nil, PathPublic, Decision{Action: ActionAllow}},
		{"fresh session, private path", fresh, PathPrivate, Decision{Action: ActionAllow}},
		{"fresh session, public path", fresh, PathPublic, Decision{Action: ActionAllow}},
		{"fresh session, auth page", fresh, PathAuthPage, Decision{Action: ActionRoleHomeRedirect}},
		{"stale session, private path", stale, PathPrivate, Decision{Action: ActionLoginRedirect, InvalidateSession: true}},
		{"stale session, auth page", stale, PathAuthPage, Decision{Action: ActionLoginRedirect, InvalidateSession: true}},
		{"exactly at the idle boundary is still live", atEdge, PathPrivate, Decision{Action: ActionAllow}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.sess, now, idle, tt.class)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecideStaleBeatsAuthPageRedirect(t *testing.T) {
	// An expired session on an auth page must be destroyed and sent to login,
	// never bounced to the role home.
	now := time.Now()
	sess := &model.Session{ID: "s", Role: model.Educator, LastActivity: now.Add(-time.Hour)}

	got := Decide(sess, now, 30*time.Minute, PathAuthPage)
	assert.Equal(t, ActionLoginRedirect, got.Action)
	assert.True(t, got.InvalidateSession)
}
