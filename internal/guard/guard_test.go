package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jugadveer/wealthplay-cli/internal/models"
	"github.com/jugadveer/wealthplay-cli/internal/session"
)

func TestDecide(t *testing.T) {
	onboarded := &models.UserIdentity{Username: "ravi", OnboardingCompleted: true}
	fresh := &models.UserIdentity{Username: "ravi"}

	tests := []struct {
		name string
		snap session.Snapshot
		path string
		want Decision
	}{
		{
			name: "unresolved session holds instead of redirecting",
			snap: session.Snapshot{Loading: true},
			path: AuthedHome,
			want: Decision{Action: Pending},
		},
		{
			name: "unresolved session holds even for onboarding",
			snap: session.Snapshot{Loading: true},
			path: OnboardingPath,
			want: Decision{Action: Pending},
		},
		{
			name: "anonymous user bounced to the landing page",
			snap: session.Snapshot{},
			path: AuthedHome,
			want: Decision{Action: Redirect, Target: PublicRoot},
		},
		{
			name: "authenticated user renders protected path",
			snap: session.Snapshot{User: onboarded},
			path: AuthedHome,
			want: Decision{Action: Render},
		},
		{
			name: "onboarded user cannot revisit onboarding",
			snap: session.Snapshot{User: onboarded},
			path: OnboardingPath,
			want: Decision{Action: Redirect, Target: AuthedHome},
		},
		{
			name: "fresh signup may enter onboarding",
			snap: session.Snapshot{User: fresh},
			path: OnboardingPath,
			want: Decision{Action: Render},
		},
		{
			name: "incomplete onboarding never blocks other views",
			snap: session.Snapshot{User: fresh},
			path: "/courses",
			want: Decision{Action: Render},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.snap, tt.path))
		})
	}
}
