package discord

// channel.go contains the information relating to channels

// ChannelType represents a channel's type.
type ChannelType uint16

const (
	ChannelTypeGuildText ChannelType = iota
	ChannelTypeDM
	ChannelTypeGuildVoice
	ChannelTypeGroupDM
	ChannelTypeGuildCategory
	ChannelTypeGuildNews
	ChannelTypeGuildStore
	_
	_
	_
	ChannelTypeGuildNewsThread
	ChannelTypeGuildPublicThread
	ChannelTypeGuildPrivateThread
	ChannelTypeGuildStageVoice
	ChannelTypeGuildDirectory
	ChannelTypeGuildForum
	ChannelTypeGuildMedia
)

// IsThread returns true for every thread channel type.
func (ct ChannelType) IsThread() bool {
	return ct == ChannelTypeGuildNewsThread || ct == ChannelTypeGuildPublicThread || ct == ChannelTypeGuildPrivateThread
}

// Channel represents a Discord channel.
type Channel struct {
	OwnerID          *UserID        `json:"owner_id,omitempty"`
	GuildID          *GuildID       `json:"guild_id,omitempty"`
	ParentID         *ChannelID     `json:"parent_id,omitempty"`
	ApplicationID    *ApplicationID `json:"application_id,omitempty"`
	LastMessageID    *MessageID     `json:"last_message_id,omitempty"`
	Permissions      *Int64         `json:"permissions,omitempty"`
	Topic            string         `json:"topic,omitempty"`
	Name             string         `json:"name,omitempty"`
	Recipients       UserList       `json:"recipients,omitempty"`
	ID               ChannelID      `json:"id"`
	RateLimitPerUser int32          `json:"rate_limit_per_user,omitempty"`
	Position         int32          `json:"position,omitempty"`
	Type             ChannelType    `json:"type"`
	NSFW             bool           `json:"nsfw,omitempty"`
}
