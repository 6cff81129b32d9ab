package discord

import "encoding/json"

// message.go contains the structure that represents a discord message.

// MessageType represents the type of message that has been sent.
type MessageType uint16

const (
	MessageTypeDefault MessageType = iota
	MessageTypeRecipientAdd
	MessageTypeRecipientRemove
	MessageTypeCall
	MessageTypeChannelNameChange
	MessageTypeChannelIconChange
	MessageTypeChannelPinnedMessage
	MessageTypeGuildMemberJoin
	MessageTypeUserPremiumGuildSubscription
	MessageTypeUserPremiumGuildSubscriptionTier1
	MessageTypeUserPremiumGuildSubscriptionTier2
	MessageTypeUserPremiumGuildSubscriptionTier3
	MessageTypeChannelFollowAdd
	_
	MessageTypeGuildDiscoveryDisqualified
	MessageTypeGuildDiscoveryRequalified
	MessageTypeGuildDiscoveryGracePeriodInitialWarning
	MessageTypeGuildDiscoveryGracePeriodFinalWarning
	MessageTypeThreadCreated
	MessageTypeReply
	MessageTypeApplicationCommand
	MessageTypeThreadStarterMessage
	MessageTypeGuildInviteReminder
	MessageTypeContextMenuCommand
)

// MessageFlags represents the extra information on a message.
type MessageFlags uint32

const (
	MessageFlagCrossposted MessageFlags = 1 << iota
	MessageFlagIsCrosspost
	MessageFlagSuppressEmbeds
	MessageFlagSourceMessageDeleted
	MessageFlagUrgent
	MessageFlagHasThread
	MessageFlagEphemeral
	MessageFlagLoading
	MessageFlagFailedToMentionSomeRolesInThread
)

// MessageAllowedMentionsType represents all the allowed mention types.
type MessageAllowedMentionsType string

const (
	MessageAllowedMentionsTypeRoles    MessageAllowedMentionsType = "roles"
	MessageAllowedMentionsTypeUsers    MessageAllowedMentionsType = "users"
	MessageAllowedMentionsTypeEveryone MessageAllowedMentionsType = "everyone"
)

// Message represents a message on discord.
type Message struct {
	Timestamp         Timestamp           `json:"timestamp"`
	EditedTimestamp   Timestamp           `json:"edited_timestamp"`
	Author            User                `json:"author"`
	WebhookID         *Snowflake          `json:"webhook_id,omitempty"`
	Member            *GuildMember        `json:"member,omitempty"`
	GuildID           *GuildID            `json:"guild_id,omitempty"`
	Interaction       *MessageInteraction `json:"interaction,omitempty"`
	ReferencedMessage *Message            `json:"referenced_message,omitempty"`
	Flags             *MessageFlags       `json:"flags,omitempty"`
	Content           string              `json:"content"`
	MentionRoles      []RoleID            `json:"mention_roles"`
	Attachments       []MessageAttachment `json:"attachments"`
	Components        []json.RawMessage   `json:"components,omitempty"`
	Mentions          []User              `json:"mentions"`
	ID                MessageID           `json:"id"`
	ChannelID         ChannelID           `json:"channel_id"`
	MentionEveryone   bool                `json:"mention_everyone"`
	TTS               bool                `json:"tts"`
	Type              MessageType         `json:"type"`
	Pinned            bool                `json:"pinned"`
}

// MessageInteraction represents an executed interaction.
type MessageInteraction struct {
	User User            `json:"user"`
	Type InteractionType `json:"type"`
	Name string          `json:"name"`
	ID   InteractionID   `json:"id"`
}

// MessageAllowedMentions is the structure of the allowed mentions entry.
type MessageAllowedMentions struct {
	Parse       []MessageAllowedMentionsType `json:"parse"`
	Roles       []RoleID                     `json:"roles"`
	Users       []UserID                     `json:"users"`
	RepliedUser bool                         `json:"replied_user"`
}

// MessageAttachment represents a message attachment on discord.
type MessageAttachment struct {
	Filename    string       `json:"filename"`
	ContentType string       `json:"content_type,omitempty"`
	URL         string       `json:"url"`
	ProxyURL    string       `json:"proxy_url"`
	ID          AttachmentID `json:"id"`
	Size        int32        `json:"size"`
	Height      int32        `json:"height"`
	Width       int32        `json:"width"`
	Ephemeral   bool         `json:"ephemeral"`
}
