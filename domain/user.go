package domain

import "context"

// User is the durable record bound to one external identity. Uid originates
// only from the authentication boundary and never from caller input. Rows are
// immutable once created; there is no update or delete operation.
type User struct {
	Uid      string `gorm:"type:varchar(128);primaryKey;column:uid" json:"uid"`
	Username string `gorm:"type:varchar(50);unique;not null;column:username" json:"username"`
	IsGuest  bool   `gorm:"not null;column:is_guest" json:"isGuest"`
}

type NewUserRequest struct {
	Username string `json:"username"`
}

// CallerIdentity is the verified identity produced by the binding middleware.
// Gated operations receive it explicitly; nothing recovers it ad hoc.
type CallerIdentity struct {
	Uid string
}

// Authorize allows access iff the caller is the owner of the target uid.
// Comparison is case-sensitive with no normalization.
func (c CallerIdentity) Authorize(uid string) error {
	if c.Uid != uid {
		return ErrForbidden
	}
	return nil
}

type UserRepository interface {
	FindByUID(ctx context.Context, uid string) (*User, error)
	Insert(ctx context.Context, user *User) error
	GetChallenges(ctx context.Context, uid string) ([]GameChallenge, error)
	GetGames(ctx context.Context, uid string) ([]Game, error)
}
