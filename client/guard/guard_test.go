package guard

import (
	"testing"

	"printdesk/client/session"
	"printdesk/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		sess     *session.Session
		required entity.Role
		want     State
	}{
		{
			name:     "no session redirects to sign-in",
			sess:     nil,
			required: entity.RoleShopOwner,
			want:     Unauthenticated,
		},
		{
			name:     "admin visiting shop dashboard is rejected",
			sess:     &session.Session{Role: entity.RoleAdmin},
			required: entity.RoleShopOwner,
			want:     WrongRole,
		},
		{
			name:     "shop owner visiting admin screens is rejected",
			sess:     &session.Session{Role: entity.RoleShopOwner},
			required: entity.RoleAdmin,
			want:     WrongRole,
		},
		{
			name:     "matching role renders the subtree",
			sess:     &session.Session{Role: entity.RoleShopOwner},
			required: entity.RoleShopOwner,
			want:     Authorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.sess, tt.required))
		})
	}
}
