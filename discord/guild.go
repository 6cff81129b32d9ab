package discord

// guild.go represents all structures for a discord guild.

// Guild represents a guild on discord.
type Guild struct {
	AFKChannelID           *ChannelID      `json:"afk_channel_id,omitempty"`
	SystemChannelID        *ChannelID      `json:"system_channel_id,omitempty"`
	RulesChannelID         *ChannelID      `json:"rules_channel_id,omitempty"`
	PublicUpdatesChannelID *ChannelID      `json:"public_updates_channel_id,omitempty"`
	ApplicationID          *ApplicationID  `json:"application_id,omitempty"`
	Permissions            *Int64          `json:"permissions,omitempty"`
	Icon                   *string         `json:"icon"`
	JoinedAt               Timestamp       `json:"joined_at"`
	Description            string          `json:"description"`
	PreferredLocale        string          `json:"preferred_locale"`
	Name                   string          `json:"name"`
	Banner                 string          `json:"banner,omitempty"`
	VanityURLCode          string          `json:"vanity_url_code"`
	Features               StringList      `json:"features"`
	Roles                  RoleList        `json:"roles"`
	Emojis                 EmojiList       `json:"emojis"`
	Members                GuildMemberList `json:"members"`
	Channels               ChannelList     `json:"channels"`
	Threads                ChannelList     `json:"threads"`
	OwnerID                UserID          `json:"owner_id"`
	ID                     GuildID         `json:"id"`
	MemberCount            int32           `json:"member_count"`
	AFKTimeout             int32           `json:"afk_timeout"`
	Large                  bool            `json:"large"`
	Unavailable            bool            `json:"unavailable"`
}

// GuildMember represents a guild member on discord.
type GuildMember struct {
	User                       *User      `json:"user,omitempty"`
	GuildID                    *GuildID   `json:"guild_id,omitempty"`
	CommunicationDisabledUntil *string    `json:"communication_disabled_until,omitempty"`
	Nick                       string     `json:"nick,omitempty"`
	Avatar                     string     `json:"avatar,omitempty"`
	PremiumSince               string     `json:"premium_since,omitempty"`
	JoinedAt                   Timestamp  `json:"joined_at,omitempty"`
	Roles                      RoleIDList `json:"roles"`
	Permissions                Int64      `json:"permissions"`
	Flags                      int        `json:"flags"`
	Deaf                       bool       `json:"deaf"`
	Mute                       bool       `json:"mute"`
	Pending                    bool       `json:"pending"`
}
