package sandwich

import (
	"context"
	"errors"
	"fmt"

	"github.com/WelcomerTeam/Sandwich-Interactions/discord"
	"github.com/WelcomerTeam/Sandwich-Interactions/sandwichjson"
)

// Reasons an interaction was dropped, used as metric labels.
const (
	dropReasonMalformed     = "malformed"
	dropReasonUnknownType   = "unknown_type"
	dropReasonConstruct     = "construct_failed"
	dropReasonNotDispatched = "not_interaction"
)

var applicationCommandStructures = map[discord.ApplicationCommandType]StructureName{
	discord.ApplicationCommandTypeChatInput:         StructureChatInputCommandInteraction,
	discord.ApplicationCommandTypeUser:              StructureUserContextMenuCommandInteraction,
	discord.ApplicationCommandTypeMessage:           StructureMessageContextMenuCommandInteraction,
	discord.ApplicationCommandTypePrimaryEntryPoint: StructurePrimaryEntryPointCommandInteraction,
}

var messageComponentStructures = map[discord.ComponentType]StructureName{
	discord.ComponentTypeButton:            StructureButtonInteraction,
	discord.ComponentTypeStringSelect:      StructureStringSelectMenuInteraction,
	discord.ComponentTypeUserSelect:        StructureUserSelectMenuInteraction,
	discord.ComponentTypeRoleSelect:        StructureRoleSelectMenuInteraction,
	discord.ComponentTypeMentionableSelect: StructureMentionableSelectMenuInteraction,
	discord.ComponentTypeChannelSelect:     StructureChannelSelectMenuInteraction,
}

type interactionDiscriminant struct {
	Data *struct {
		Type          discord.ApplicationCommandType `json:"type"`
		ComponentType discord.ComponentType          `json:"component_type"`
	} `json:"data"`
	Type discord.InteractionType `json:"type"`
}

// InteractionStructureName returns the structure an interaction payload is
// constructed as. Unknown discriminants return an error wrapping both
// ErrUnknownInteraction and a *discord.UnknownTypeError.
func InteractionStructureName(data []byte) (StructureName, error) {
	var discriminant interactionDiscriminant

	if err := sandwichjson.Unmarshal(data, &discriminant); err != nil {
		return "", fmt.Errorf("failed to unmarshal interaction: %w", err)
	}

	switch discriminant.Type {
	case discord.InteractionTypeApplicationCommand:
		if discriminant.Data == nil {
			return "", unknownInteraction("data.type", 0)
		}

		if name, ok := applicationCommandStructures[discriminant.Data.Type]; ok {
			return name, nil
		}

		return "", unknownInteraction("data.type", uint16(discriminant.Data.Type))
	case discord.InteractionTypeMessageComponent:
		if discriminant.Data == nil {
			return "", unknownInteraction("data.component_type", 0)
		}

		if name, ok := messageComponentStructures[discriminant.Data.ComponentType]; ok {
			return name, nil
		}

		return "", unknownInteraction("data.component_type", uint16(discriminant.Data.ComponentType))
	case discord.InteractionTypeApplicationCommandAutocomplete:
		return StructureAutocompleteInteraction, nil
	case discord.InteractionTypeModalSubmit:
		return StructureModalSubmitInteraction, nil
	default:
		return "", unknownInteraction("type", uint16(discriminant.Type))
	}
}

func isUnknownInteraction(err error) bool {
	var unknownTypeError *discord.UnknownTypeError

	return errors.As(err, &unknownTypeError)
}

func unknownInteraction(field string, value uint16) error {
	return fmt.Errorf("%w: %w", ErrUnknownInteraction, &discord.UnknownTypeError{Field: field, Value: value})
}

// DispatchInteraction constructs the interaction through the structures of
// the client and publishes it to InteractionCreate. Interactions that cannot
// be constructed are published to Debug and dropped.
func (c *Client) DispatchInteraction(ctx context.Context, data []byte) {
	name, err := InteractionStructureName(data)
	if err != nil {
		reason := dropReasonMalformed
		if isUnknownInteraction(err) {
			reason = dropReasonUnknownType
		}

		c.dropInteraction(ctx, reason, err)

		return
	}

	class, err := c.Structures.Get(name)
	if err != nil {
		c.dropInteraction(ctx, dropReasonConstruct, err)

		return
	}

	structure, err := class.New(c, data)
	if err != nil {
		c.dropInteraction(ctx, dropReasonConstruct, fmt.Errorf("failed to construct %s: %w", name, err))

		return
	}

	interaction, ok := structure.(Interaction)
	if !ok {
		c.dropInteraction(ctx, dropReasonNotDispatched, fmt.Errorf("%s: %T is not an interaction", name, structure))

		return
	}

	RecordInteraction(string(name))

	c.InteractionCreate.Publish(ctx, interaction)
}

func (c *Client) dropInteraction(ctx context.Context, reason string, err error) {
	RecordDroppedInteraction(reason)

	c.Logger.Debug().
		Err(err).
		Str("reason", reason).
		Msg("Dropped interaction")

	c.Debug.Publish(ctx, &DebugEvent{
		Err:       err,
		Message:   "dropped interaction: " + reason,
		EventType: discord.DiscordEventInteractionCreate,
	})
}
