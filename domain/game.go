package domain

import "time"

// GameChallenge is a pending invitation created by a user. This layer only
// reads challenges and enriches them into responses; the game service owns
// their lifecycle.
type GameChallenge struct {
	ID            string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid();column:id" json:"id"`
	ChallengerUid string    `gorm:"column:challenger_uid;not null" json:"challengerUid"`
	GameType      string    `gorm:"type:varchar(20);column:game_type;not null" json:"gameType"`
	ColorChoice   string    `gorm:"type:varchar(10);column:color_choice;not null" json:"colorChoice"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"createdAt"`
	Challenger    User      `gorm:"foreignkey:ChallengerUid;references:Uid" json:"-"`
}

type Game struct {
	ID         string `gorm:"type:uuid;primaryKey;default:gen_random_uuid();column:id" json:"id"`
	WhiteUid   string `gorm:"column:white_uid;not null" json:"whiteUid"`
	BlackUid   string `gorm:"column:black_uid;not null" json:"blackUid"`
	GameType   string `gorm:"type:varchar(20);column:game_type;not null" json:"gameType"`
	Turn       Color  `gorm:"type:varchar(1);column:turn;not null;default:'b'" json:"turn"`
	GameStatus string `gorm:"type:varchar(20);column:game_status;not null" json:"gameStatus"`
	White      User   `gorm:"foreignkey:WhiteUid;references:Uid" json:"-"`
	Black      User   `gorm:"foreignkey:BlackUid;references:Uid" json:"-"`
}

// GameChallengeResponse is the outward view of a challenge, carrying the
// challenger's denormalized display name so callers need no second lookup.
type GameChallengeResponse struct {
	ID                 string    `json:"id"`
	ChallengerUid      string    `json:"challengerUid"`
	ChallengerUsername string    `json:"challengerUsername"`
	GameType           string    `json:"gameType"`
	ColorChoice        string    `json:"colorChoice"`
	CreatedAt          time.Time `json:"createdAt"`
}

// NewGameChallengeResponse composes the view from a challenge and the
// challenger's user record. The supplied user must be the challenge's
// challenger; a mismatch means the relational data is inconsistent.
func NewGameChallengeResponse(challenge GameChallenge, user User) (GameChallengeResponse, error) {
	if challenge.ChallengerUid != user.Uid {
		return GameChallengeResponse{}, ErrChallengeAssembly
	}
	return GameChallengeResponse{
		ID:                 challenge.ID,
		ChallengerUid:      challenge.ChallengerUid,
		ChallengerUsername: user.Username,
		GameType:           challenge.GameType,
		ColorChoice:        challenge.ColorChoice,
		CreatedAt:          challenge.CreatedAt,
	}, nil
}
