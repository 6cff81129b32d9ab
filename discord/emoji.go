package discord

// emoji.go contains all structures for emojis.

// Emoji represents an Emoji on discord.
type Emoji struct {
	GuildID       *GuildID      `json:"guild_id,omitempty"`
	User          *User         `json:"user,omitempty"`
	Name          string        `json:"name"`
	Roles         SnowflakeList `json:"roles,omitempty"`
	ID            EmojiID       `json:"id"`
	RequireColons bool          `json:"require_colons"`
	Managed       bool          `json:"managed"`
	Animated      bool          `json:"animated"`
	Available     bool          `json:"available"`
}

// PartialEmoji is the emoji representation used by components.
// Unicode emojis only carry a name.
type PartialEmoji struct {
	ID       *EmojiID `json:"id,omitempty"`
	Name     string   `json:"name,omitempty"`
	Animated bool     `json:"animated,omitempty"`
}
