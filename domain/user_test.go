package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallerIdentityAuthorize(t *testing.T) {
	tests := []struct {
		name    string
		caller  string
		target  string
		allowed bool
	}{
		{"Same Identity", "user-123", "user-123", true},
		{"Different Identity", "user-123", "user-456", false},
		{"Differing Case", "User-123", "user-123", false},
		{"Empty Caller", "", "user-123", false},
		{"Empty Target", "user-123", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caller := CallerIdentity{Uid: tt.caller}
			err := caller.Authorize(tt.target)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrForbidden)
			}
		})
	}
}
