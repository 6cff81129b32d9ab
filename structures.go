package sandwich

import (
	"fmt"
	"reflect"
)

// StructureName identifies an overridable structure. The set of names is closed.
type StructureName string

const (
	StructureGuild       StructureName = "Guild"
	StructureChannel     StructureName = "Channel"
	StructureMessage     StructureName = "Message"
	StructureUser        StructureName = "User"
	StructureGuildMember StructureName = "GuildMember"
	StructureRole        StructureName = "Role"

	StructureChatInputCommandInteraction          StructureName = "ChatInputCommandInteraction"
	StructureUserContextMenuCommandInteraction    StructureName = "UserContextMenuCommandInteraction"
	StructureMessageContextMenuCommandInteraction StructureName = "MessageContextMenuCommandInteraction"
	StructurePrimaryEntryPointCommandInteraction  StructureName = "PrimaryEntryPointCommandInteraction"
	StructureButtonInteraction                    StructureName = "ButtonInteraction"
	StructureStringSelectMenuInteraction          StructureName = "StringSelectMenuInteraction"
	StructureUserSelectMenuInteraction            StructureName = "UserSelectMenuInteraction"
	StructureRoleSelectMenuInteraction            StructureName = "RoleSelectMenuInteraction"
	StructureMentionableSelectMenuInteraction     StructureName = "MentionableSelectMenuInteraction"
	StructureChannelSelectMenuInteraction         StructureName = "ChannelSelectMenuInteraction"
	StructureAutocompleteInteraction              StructureName = "AutocompleteInteraction"
	StructureModalSubmitInteraction               StructureName = "ModalSubmitInteraction"
)

// Structure is implemented by every value constructed through a Class.
type Structure interface {
	Client() *Client
}

// Constructor builds a structure from its raw wire payload.
type Constructor func(client *Client, data []byte) (Structure, error)

// Class pairs a constructor with the type of the values it produces.
// A zero Class has no constructor.
type Class struct {
	typ       reflect.Type
	construct Constructor
	err       error
}

// NewClass returns a class from a typed constructor.
func NewClass[T Structure](construct func(client *Client, data []byte) (T, error)) Class {
	if construct == nil {
		return Class{}
	}

	return Class{
		typ: reflect.TypeOf((*T)(nil)).Elem(),
		construct: func(client *Client, data []byte) (Structure, error) {
			structure, err := construct(client, data)
			if err != nil {
				return nil, err
			}

			return structure, nil
		},
	}
}

// Derive returns a class whose instances wrap an instance of base. The
// returned type must embed the type produced by base to be accepted by Extend:
//
//	type MyGuild struct {
//		*sandwich.Guild
//	}
//
//	builder.Extend(sandwich.StructureGuild, func(base sandwich.Class) sandwich.Class {
//		return sandwich.Derive(base, func(guild *sandwich.Guild) *MyGuild {
//			return &MyGuild{Guild: guild}
//		})
//	})
func Derive[P, C Structure](base Class, wrap func(parent P) C) Class {
	parentType := reflect.TypeOf((*P)(nil)).Elem()

	switch {
	case wrap == nil:
		return Class{err: fmt.Errorf("%w: derive called without a wrap function", ErrInvalidExtension)}
	case base.construct == nil:
		return Class{err: fmt.Errorf("%w: base class has no constructor", ErrInvalidExtension)}
	case !base.typ.AssignableTo(parentType):
		return Class{err: fmt.Errorf("%w: %s is not assignable to %s", ErrInvalidExtension, base.typ, parentType)}
	}

	return Class{
		typ: reflect.TypeOf((*C)(nil)).Elem(),
		construct: func(client *Client, data []byte) (Structure, error) {
			parent, err := base.construct(client, data)
			if err != nil {
				return nil, err
			}

			return wrap(parent.(P)), nil
		},
	}
}

// Type returns the type of the values the class constructs.
func (c Class) Type() reflect.Type {
	return c.typ
}

// IsZero returns true when the class has no constructor.
func (c Class) IsZero() bool {
	return c.construct == nil
}

// New constructs a structure from its raw wire payload.
func (c Class) New(client *Client, data []byte) (Structure, error) {
	if c.construct == nil {
		return nil, fmt.Errorf("%w: class has no constructor", ErrInvalidExtension)
	}

	return c.construct(client, data)
}

// Extends returns true when the class is parent or embeds the type of parent.
func (c Class) Extends(parent Class) bool {
	if c.typ == nil || parent.typ == nil {
		return false
	}

	return embeds(c.typ, parent.typ, map[reflect.Type]bool{})
}

func embeds(child, parent reflect.Type, visited map[reflect.Type]bool) bool {
	if child == parent {
		return true
	}

	if visited[child] {
		return false
	}

	visited[child] = true

	structType := child
	if structType.Kind() == reflect.Pointer {
		structType = structType.Elem()
	}

	if structType.Kind() != reflect.Struct {
		return false
	}

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.Anonymous {
			continue
		}

		if parent.Kind() == reflect.Pointer && field.Type == parent.Elem() {
			return true
		}

		if embeds(field.Type, parent, visited) {
			return true
		}
	}

	return false
}

// Construct builds a structure with class and asserts it to T.
func Construct[T any](client *Client, class Class, data []byte) (T, error) {
	var zero T

	structure, err := class.New(client, data)
	if err != nil {
		return zero, err
	}

	typed, ok := structure.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %T does not implement %s", ErrInvalidExtension, structure, reflect.TypeOf((*T)(nil)).Elem())
	}

	return typed, nil
}
