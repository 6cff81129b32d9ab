package sandwich

import (
	"errors"
	"fmt"

	"github.com/WelcomerTeam/Sandwich-Interactions/components"
	"github.com/WelcomerTeam/Sandwich-Interactions/discord"
	"github.com/WelcomerTeam/Sandwich-Interactions/sandwichjson"
)

// structures_types.go contains the data holding structures. Each embeds its
// wire type and keeps the client it was constructed by.

type GuildStructure interface {
	Structure
	AsGuild() *Guild
}

type ChannelStructure interface {
	Structure
	AsChannel() *Channel
}

type MessageStructure interface {
	Structure
	AsMessage() *Message
}

type UserStructure interface {
	Structure
	AsUser() *User
}

type GuildMemberStructure interface {
	Structure
	AsGuildMember() *GuildMember
}

type RoleStructure interface {
	Structure
	AsRole() *Role
}

// Guild represents a guild on discord.
type Guild struct {
	discord.Guild

	client *Client
}

func NewGuild(client *Client, data []byte) (*Guild, error) {
	guild := &Guild{client: client}

	if err := sandwichjson.Unmarshal(data, &guild.Guild); err != nil {
		return nil, fmt.Errorf("failed to unmarshal guild: %w", err)
	}

	return guild, nil
}

func (g *Guild) Client() *Client { return g.client }
func (g *Guild) AsGuild() *Guild { return g }

// Channel represents a channel on discord.
type Channel struct {
	discord.Channel

	client *Client
}

func NewChannel(client *Client, data []byte) (*Channel, error) {
	channel := &Channel{client: client}

	if err := sandwichjson.Unmarshal(data, &channel.Channel); err != nil {
		return nil, fmt.Errorf("failed to unmarshal channel: %w", err)
	}

	return channel, nil
}

func (c *Channel) Client() *Client     { return c.client }
func (c *Channel) AsChannel() *Channel { return c }

// IsThread returns true if the channel is a thread.
func (c *Channel) IsThread() bool {
	return c.Type.IsThread()
}

// Message represents a message on discord. Components holds the typed
// components, the wire payloads remain on the embedded message.
type Message struct {
	discord.Message

	client     *Client
	components []components.Component
}

func NewMessage(client *Client, data []byte) (*Message, error) {
	message := &Message{client: client}

	if err := sandwichjson.Unmarshal(data, &message.Message); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message: %w", err)
	}

	message.components = make([]components.Component, 0, len(message.Message.Components))

	for _, raw := range message.Message.Components {
		component, err := components.Parse(raw)
		if err != nil {
			if !errors.Is(err, components.ErrUnsupportedComponentType) {
				return nil, fmt.Errorf("failed to parse message components: %w", err)
			}

			if client != nil {
				client.Logger.Debug().Err(err).
					Str("message_id", message.ID.String()).
					Msg("Skipped unsupported message component")
			}

			continue
		}

		message.components = append(message.components, component)
	}

	return message, nil
}

func (m *Message) Client() *Client     { return m.client }
func (m *Message) AsMessage() *Message { return m }

// Components returns the typed components of the message.
func (m *Message) Components() []components.Component {
	return append(make([]components.Component, 0, len(m.components)), m.components...)
}

// FindComponent returns the first component, searching inside action rows,
// that has the given custom ID.
func (m *Message) FindComponent(customID string) (components.Component, bool) {
	return findComponent(m.components, customID)
}

func findComponent(list []components.Component, customID string) (components.Component, bool) {
	for _, component := range list {
		switch typed := component.(type) {
		case *components.ActionRow:
			if found, ok := findComponent(typed.Components(), customID); ok {
				return found, true
			}
		case *components.Button:
			if typed.CustomID == customID {
				return typed, true
			}
		case *components.SelectMenu:
			if typed.CustomID == customID {
				return typed, true
			}
		case *components.TextInput:
			if typed.CustomID == customID {
				return typed, true
			}
		}
	}

	return nil, false
}

// User represents a user on discord.
type User struct {
	discord.User

	client *Client
}

func NewUser(client *Client, data []byte) (*User, error) {
	user := &User{client: client}

	if err := sandwichjson.Unmarshal(data, &user.User); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return user, nil
}

func (u *User) Client() *Client { return u.client }
func (u *User) AsUser() *User   { return u }

// Mention returns the string used to mention the user.
func (u *User) Mention() string {
	return "<@" + u.ID.String() + ">"
}

// GuildMember represents a member of a guild.
type GuildMember struct {
	discord.GuildMember

	client *Client
}

func NewGuildMember(client *Client, data []byte) (*GuildMember, error) {
	member := &GuildMember{client: client}

	if err := sandwichjson.Unmarshal(data, &member.GuildMember); err != nil {
		return nil, fmt.Errorf("failed to unmarshal guild member: %w", err)
	}

	return member, nil
}

func (gm *GuildMember) Client() *Client             { return gm.client }
func (gm *GuildMember) AsGuildMember() *GuildMember { return gm }

// DisplayName returns the nickname, falling back to the name of the user.
func (gm *GuildMember) DisplayName() string {
	if gm.Nick != "" {
		return gm.Nick
	}

	if gm.User != nil {
		return gm.User.DisplayName()
	}

	return ""
}

// Role represents a role of a guild.
type Role struct {
	discord.Role

	client *Client
}

func NewRole(client *Client, data []byte) (*Role, error) {
	role := &Role{client: client}

	if err := sandwichjson.Unmarshal(data, &role.Role); err != nil {
		return nil, fmt.Errorf("failed to unmarshal role: %w", err)
	}

	return role, nil
}

func (r *Role) Client() *Client { return r.client }
func (r *Role) AsRole() *Role   { return r }
