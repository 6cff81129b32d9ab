package discord

import "github.com/WelcomerTeam/Sandwich-Interactions/sandwichjson"

// user.go represents all structures for a discord user.

// UserFlags represents the flags on a user's account.
type UserFlags uint32

// User flags.
const (
	UserFlagsDiscordEmployee UserFlags = 1 << iota
	UserFlagsPartneredServerOwner
	UserFlagsHypeSquadEvents
	UserFlagsBugHunterLevel1
	_
	_
	UserFlagsHouseBravery
	UserFlagsHouseBrilliance
	UserFlagsHouseBalance
	UserFlagsEarlySupporter
	UserFlagsTeamUser
	_
	_
	_
	UserFlagsBugHunterLevel2
	_
	UserFlagsVerifiedBot
	UserFlagsVerifiedDeveloper
	UserFlagsCertifiedModerator
	UserFlagsBotHTTPInteractions
	_
	_
	UserFlagsActiveDeveloper
)

// User represents a user on discord.
type User struct {
	Avatar        *string   `json:"avatar"`
	Banner        string    `json:"banner,omitempty"`
	GlobalName    string    `json:"global_name"`
	Username      string    `json:"username"`
	Discriminator string    `json:"discriminator"`
	Locale        string    `json:"locale,omitempty"`
	ID            UserID    `json:"id"`
	Flags         UserFlags `json:"flags"`
	AccentColor   int32     `json:"accent_color"`
	PublicFlags   UserFlags `json:"public_flags"`
	Bot           bool      `json:"bot"`
	System        bool      `json:"system"`
}

// Used to avoid a marshal loop.
type marshalUser User

func (u User) MarshalJSON() ([]byte, error) {
	// Patch for discriminator
	if u.Discriminator == "" {
		u.Discriminator = "0"
	}

	return sandwichjson.Marshal(marshalUser(u))
}

// DisplayName returns the global name of the user, falling back to the username.
func (u *User) DisplayName() string {
	if u.GlobalName != "" {
		return u.GlobalName
	}

	return u.Username
}
