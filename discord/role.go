package discord

// role.go represents all structures for a discord guild role.

// Role represents a role on discord.
type Role struct {
	GuildID      *GuildID `json:"guild_id,omitempty"`
	Name         string   `json:"name"`
	Icon         string   `json:"icon,omitempty"`
	UnicodeEmoji string   `json:"unicode_emoji,omitempty"`
	ID           RoleID   `json:"id"`
	Permissions  Int64    `json:"permissions"`
	Color        int32    `json:"color"`
	Position     int32    `json:"position"`
	Hoist        bool     `json:"hoist"`
	Managed      bool     `json:"managed"`
	Mentionable  bool     `json:"mentionable"`
}
