package sandwich

import (
	"encoding/json"
	"fmt"

	"github.com/WelcomerTeam/Sandwich-Interactions/components"
	"github.com/WelcomerTeam/Sandwich-Interactions/discord"
	"github.com/WelcomerTeam/Sandwich-Interactions/sandwichjson"
)

// interactions.go contains the interaction structures that are dispatched.

// Interaction is implemented by every interaction structure.
type Interaction interface {
	Structure
	AsInteraction() *BaseInteraction
}

// Compile-time checks that every interaction structure is dispatchable.
var (
	_ Interaction = (*ChatInputCommandInteraction)(nil)
	_ Interaction = (*UserContextMenuCommandInteraction)(nil)
	_ Interaction = (*MessageContextMenuCommandInteraction)(nil)
	_ Interaction = (*PrimaryEntryPointCommandInteraction)(nil)
	_ Interaction = (*ButtonInteraction)(nil)
	_ Interaction = (*StringSelectMenuInteraction)(nil)
	_ Interaction = (*UserSelectMenuInteraction)(nil)
	_ Interaction = (*RoleSelectMenuInteraction)(nil)
	_ Interaction = (*MentionableSelectMenuInteraction)(nil)
	_ Interaction = (*ChannelSelectMenuInteraction)(nil)
	_ Interaction = (*AutocompleteInteraction)(nil)
	_ Interaction = (*ModalSubmitInteraction)(nil)
)

// BaseInteraction holds the fields shared by every interaction. User, Member,
// Channel and Message are constructed through the managers of the client and
// shadow the wire values, which remain available on the embedded interaction.
type BaseInteraction struct {
	discord.Interaction

	User    UserStructure
	Member  GuildMemberStructure
	Channel ChannelStructure
	Message MessageStructure

	client *Client
}

func isPresent(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

func newBaseInteraction(client *Client, data []byte) (*BaseInteraction, error) {
	interaction := &BaseInteraction{client: client}

	if err := sandwichjson.Unmarshal(data, &interaction.Interaction); err != nil {
		return nil, fmt.Errorf("failed to unmarshal interaction: %w", err)
	}

	var relations struct {
		Member  json.RawMessage `json:"member"`
		User    json.RawMessage `json:"user"`
		Channel json.RawMessage `json:"channel"`
		Message json.RawMessage `json:"message"`
	}

	if err := sandwichjson.Unmarshal(data, &relations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal interaction relations: %w", err)
	}

	var err error

	if isPresent(relations.Member) {
		if interaction.Member, err = client.Members.Create(relations.Member); err != nil {
			return nil, err
		}

		var member struct {
			User json.RawMessage `json:"user"`
		}

		if err = sandwichjson.Unmarshal(relations.Member, &member); err != nil {
			return nil, fmt.Errorf("failed to unmarshal interaction member: %w", err)
		}

		if !isPresent(relations.User) {
			relations.User = member.User
		}
	}

	if isPresent(relations.User) {
		if interaction.User, err = client.Users.Create(relations.User); err != nil {
			return nil, err
		}
	}

	if isPresent(relations.Channel) {
		if interaction.Channel, err = client.Channels.Create(relations.Channel); err != nil {
			return nil, err
		}
	}

	if isPresent(relations.Message) {
		if interaction.Message, err = client.Messages.Create(relations.Message); err != nil {
			return nil, err
		}
	}

	return interaction, nil
}

func newBaseInteractionWithData(client *Client, data []byte) (*BaseInteraction, error) {
	interaction, err := newBaseInteraction(client, data)
	if err != nil {
		return nil, err
	}

	if interaction.Data == nil {
		return nil, discord.ErrMissingInteractionData
	}

	return interaction, nil
}

func (i *BaseInteraction) Client() *Client                 { return i.client }
func (i *BaseInteraction) AsInteraction() *BaseInteraction { return i }

func (i *BaseInteraction) IsCommand() bool {
	return i.Type == discord.InteractionTypeApplicationCommand
}

func (i *BaseInteraction) IsMessageComponent() bool {
	return i.Type == discord.InteractionTypeMessageComponent
}

func (i *BaseInteraction) IsAutocomplete() bool {
	return i.Type == discord.InteractionTypeApplicationCommandAutocomplete
}

func (i *BaseInteraction) IsModalSubmit() bool {
	return i.Type == discord.InteractionTypeModalSubmit
}

// IsRepliable returns true if the interaction can be responded to with a message.
func (i *BaseInteraction) IsRepliable() bool {
	return i.Type != discord.InteractionTypePing && i.Type != discord.InteractionTypeApplicationCommandAutocomplete
}

// InGuild returns true if the interaction was sent from a guild.
func (i *BaseInteraction) InGuild() bool {
	return i.GuildID != nil && *i.GuildID != 0
}

// CommandInteraction is the base of every application command interaction.
type CommandInteraction struct {
	*BaseInteraction
}

func (i *CommandInteraction) CommandID() discord.ApplicationCommandID {
	return i.Data.ID
}

func (i *CommandInteraction) CommandName() string {
	return i.Data.Name
}

func (i *CommandInteraction) CommandType() discord.ApplicationCommandType {
	return i.Data.Type
}

func (i *CommandInteraction) Options() []discord.InteractionDataOption {
	return i.Data.Options
}

func newCommandInteraction(client *Client, data []byte) (*CommandInteraction, error) {
	base, err := newBaseInteractionWithData(client, data)
	if err != nil {
		return nil, err
	}

	return &CommandInteraction{BaseInteraction: base}, nil
}

// ChatInputCommandInteraction represents a slash command.
type ChatInputCommandInteraction struct {
	*CommandInteraction
}

func NewChatInputCommandInteraction(client *Client, data []byte) (*ChatInputCommandInteraction, error) {
	command, err := newCommandInteraction(client, data)
	if err != nil {
		return nil, err
	}

	return &ChatInputCommandInteraction{CommandInteraction: command}, nil
}

// Subcommand returns the names of the invoked subcommand group and subcommand, if any.
func (i *ChatInputCommandInteraction) Subcommand() (group, subcommand string) {
	options := i.Data.Options

	if len(options) > 0 && options[0].Type == discord.ApplicationCommandOptionTypeSubCommandGroup {
		group = options[0].Name
		options = options[0].Options
	}

	if len(options) > 0 && options[0].Type == discord.ApplicationCommandOptionTypeSubCommand {
		subcommand = options[0].Name
	}

	return group, subcommand
}

// GetOption returns the option with the given name, looking inside subcommands.
func (i *ChatInputCommandInteraction) GetOption(name string) (*discord.InteractionDataOption, bool) {
	return findOption(i.Data.Options, name)
}

func findOption(options []discord.InteractionDataOption, name string) (*discord.InteractionDataOption, bool) {
	for index := range options {
		option := &options[index]

		switch option.Type {
		case discord.ApplicationCommandOptionTypeSubCommand, discord.ApplicationCommandOptionTypeSubCommandGroup:
			if found, ok := findOption(option.Options, name); ok {
				return found, true
			}
		default:
			if option.Name == name {
				return option, true
			}
		}
	}

	return nil, false
}

// ContextMenuCommandInteraction is the base of user and message commands.
type ContextMenuCommandInteraction struct {
	*CommandInteraction
}

// TargetID returns the ID of the user or message the command was used on.
func (i *ContextMenuCommandInteraction) TargetID() discord.Snowflake {
	if i.Data.TargetID == nil {
		return 0
	}

	return *i.Data.TargetID
}

// UserContextMenuCommandInteraction represents a command used on a user.
type UserContextMenuCommandInteraction struct {
	*ContextMenuCommandInteraction
}

func NewUserContextMenuCommandInteraction(client *Client, data []byte) (*UserContextMenuCommandInteraction, error) {
	command, err := newCommandInteraction(client, data)
	if err != nil {
		return nil, err
	}

	return &UserContextMenuCommandInteraction{
		ContextMenuCommandInteraction: &ContextMenuCommandInteraction{CommandInteraction: command},
	}, nil
}

// TargetUser returns the resolved user the command was used on.
func (i *UserContextMenuCommandInteraction) TargetUser() (UserStructure, bool, error) {
	if i.Data.Resolved == nil {
		return nil, false, nil
	}

	user, ok := i.Data.Resolved.Users[discord.UserID(i.TargetID())]
	if !ok {
		return nil, false, nil
	}

	return resolve(i.client.Users, user)
}

// MessageContextMenuCommandInteraction represents a command used on a message.
type MessageContextMenuCommandInteraction struct {
	*ContextMenuCommandInteraction
}

func NewMessageContextMenuCommandInteraction(client *Client, data []byte) (*MessageContextMenuCommandInteraction, error) {
	command, err := newCommandInteraction(client, data)
	if err != nil {
		return nil, err
	}

	return &MessageContextMenuCommandInteraction{
		ContextMenuCommandInteraction: &ContextMenuCommandInteraction{CommandInteraction: command},
	}, nil
}

// TargetMessage returns the resolved message the command was used on.
func (i *MessageContextMenuCommandInteraction) TargetMessage() (MessageStructure, bool, error) {
	if i.Data.Resolved == nil {
		return nil, false, nil
	}

	message, ok := i.Data.Resolved.Messages[discord.MessageID(i.TargetID())]
	if !ok {
		return nil, false, nil
	}

	return resolve(i.client.Messages, message)
}

// PrimaryEntryPointCommandInteraction represents an activity being launched.
type PrimaryEntryPointCommandInteraction struct {
	*CommandInteraction
}

func NewPrimaryEntryPointCommandInteraction(client *Client, data []byte) (*PrimaryEntryPointCommandInteraction, error) {
	command, err := newCommandInteraction(client, data)
	if err != nil {
		return nil, err
	}

	return &PrimaryEntryPointCommandInteraction{CommandInteraction: command}, nil
}

// resolve constructs a structure from an already decoded wire value.
func resolve[T Structure, V any](manager *Manager[T], value V) (T, bool, error) {
	var zero T

	data, err := sandwichjson.Marshal(value)
	if err != nil {
		return zero, false, fmt.Errorf("failed to marshal resolved value: %w", err)
	}

	structure, err := manager.Create(data)
	if err != nil {
		return zero, false, err
	}

	return structure, true, nil
}

// MessageComponentInteraction is the base of every component interaction.
type MessageComponentInteraction struct {
	*BaseInteraction
}

func newMessageComponentInteraction(client *Client, data []byte) (*MessageComponentInteraction, error) {
	base, err := newBaseInteractionWithData(client, data)
	if err != nil {
		return nil, err
	}

	return &MessageComponentInteraction{BaseInteraction: base}, nil
}

func (i *MessageComponentInteraction) CustomID() string {
	return i.Data.CustomID
}

func (i *MessageComponentInteraction) ComponentType() discord.ComponentType {
	if i.Data.ComponentType == nil {
		return 0
	}

	return *i.Data.ComponentType
}

// Component returns the component of the message that was interacted with.
func (i *MessageComponentInteraction) Component() (components.Component, bool) {
	if i.Message == nil {
		return nil, false
	}

	return i.Message.AsMessage().FindComponent(i.Data.CustomID)
}

// ButtonInteraction represents a button being clicked.
type ButtonInteraction struct {
	*MessageComponentInteraction
}

func NewButtonInteraction(client *Client, data []byte) (*ButtonInteraction, error) {
	component, err := newMessageComponentInteraction(client, data)
	if err != nil {
		return nil, err
	}

	return &ButtonInteraction{MessageComponentInteraction: component}, nil
}

// SelectMenuInteraction is the base of every select menu interaction.
type SelectMenuInteraction struct {
	*MessageComponentInteraction
}

// Values returns the selected values. Auto-populated selects return IDs.
func (i *SelectMenuInteraction) Values() []string {
	return i.Data.Values
}

func newSelectMenuInteraction(client *Client, data []byte) (*SelectMenuInteraction, error) {
	component, err := newMessageComponentInteraction(client, data)
	if err != nil {
		return nil, err
	}

	return &SelectMenuInteraction{MessageComponentInteraction: component}, nil
}

type StringSelectMenuInteraction struct {
	*SelectMenuInteraction
}

func NewStringSelectMenuInteraction(client *Client, data []byte) (*StringSelectMenuInteraction, error) {
	menu, err := newSelectMenuInteraction(client, data)
	if err != nil {
		return nil, err
	}

	return &StringSelectMenuInteraction{SelectMenuInteraction: menu}, nil
}

type UserSelectMenuInteraction struct {
	*SelectMenuInteraction
}

func NewUserSelectMenuInteraction(client *Client, data []byte) (*UserSelectMenuInteraction, error) {
	menu, err := newSelectMenuInteraction(client, data)
	if err != nil {
		return nil, err
	}

	return &UserSelectMenuInteraction{SelectMenuInteraction: menu}, nil
}

type RoleSelectMenuInteraction struct {
	*SelectMenuInteraction
}

func NewRoleSelectMenuInteraction(client *Client, data []byte) (*RoleSelectMenuInteraction, error) {
	menu, err := newSelectMenuInteraction(client, data)
	if err != nil {
		return nil, err
	}

	return &RoleSelectMenuInteraction{SelectMenuInteraction: menu}, nil
}

type MentionableSelectMenuInteraction struct {
	*SelectMenuInteraction
}

func NewMentionableSelectMenuInteraction(client *Client, data []byte) (*MentionableSelectMenuInteraction, error) {
	menu, err := newSelectMenuInteraction(client, data)
	if err != nil {
		return nil, err
	}

	return &MentionableSelectMenuInteraction{SelectMenuInteraction: menu}, nil
}

type ChannelSelectMenuInteraction struct {
	*SelectMenuInteraction
}

func NewChannelSelectMenuInteraction(client *Client, data []byte) (*ChannelSelectMenuInteraction, error) {
	menu, err := newSelectMenuInteraction(client, data)
	if err != nil {
		return nil, err
	}

	return &ChannelSelectMenuInteraction{SelectMenuInteraction: menu}, nil
}

// AutocompleteInteraction is sent while a user types a command option.
type AutocompleteInteraction struct {
	*BaseInteraction
}

func NewAutocompleteInteraction(client *Client, data []byte) (*AutocompleteInteraction, error) {
	base, err := newBaseInteractionWithData(client, data)
	if err != nil {
		return nil, err
	}

	return &AutocompleteInteraction{BaseInteraction: base}, nil
}

func (i *AutocompleteInteraction) CommandName() string {
	return i.Data.Name
}

func (i *AutocompleteInteraction) Options() []discord.InteractionDataOption {
	return i.Data.Options
}

// FocusedOption returns the option the user is currently typing in.
func (i *AutocompleteInteraction) FocusedOption() (*discord.InteractionDataOption, bool) {
	return findFocused(i.Data.Options)
}

func findFocused(options []discord.InteractionDataOption) (*discord.InteractionDataOption, bool) {
	for index := range options {
		if options[index].Focused {
			return &options[index], true
		}

		if found, ok := findFocused(options[index].Options); ok {
			return found, true
		}
	}

	return nil, false
}

// ModalSubmitInteraction is sent when a modal is submitted.
type ModalSubmitInteraction struct {
	*BaseInteraction

	fields []*components.TextInput
}

func NewModalSubmitInteraction(client *Client, data []byte) (*ModalSubmitInteraction, error) {
	base, err := newBaseInteractionWithData(client, data)
	if err != nil {
		return nil, err
	}

	rows, err := components.ParseAll(base.Data.Components)
	if err != nil {
		return nil, fmt.Errorf("failed to parse modal components: %w", err)
	}

	interaction := &ModalSubmitInteraction{BaseInteraction: base}

	for _, row := range rows {
		actionRow, ok := row.(*components.ActionRow)
		if !ok {
			continue
		}

		for _, component := range actionRow.Components() {
			if input, ok := component.(*components.TextInput); ok {
				interaction.fields = append(interaction.fields, input)
			}
		}
	}

	return interaction, nil
}

func (i *ModalSubmitInteraction) CustomID() string {
	return i.Data.CustomID
}

// Fields returns the submitted text inputs in order.
func (i *ModalSubmitInteraction) Fields() []*components.TextInput {
	return append(make([]*components.TextInput, 0, len(i.fields)), i.fields...)
}

// TextInputValue returns the submitted value of the text input with the given custom ID.
func (i *ModalSubmitInteraction) TextInputValue(customID string) (string, bool) {
	for _, field := range i.fields {
		if field.CustomID == customID {
			return field.Value, true
		}
	}

	return "", false
}
