package sandwich

import (
	"fmt"
	"reflect"
	"sort"

	"go.uber.org/atomic"
)

var interactionInterface = reflect.TypeOf((*Interaction)(nil)).Elem()

// structureInterfaces lists the interface every class registered under a name must implement.
var structureInterfaces = map[StructureName]reflect.Type{
	StructureGuild:       reflect.TypeOf((*GuildStructure)(nil)).Elem(),
	StructureChannel:     reflect.TypeOf((*ChannelStructure)(nil)).Elem(),
	StructureMessage:     reflect.TypeOf((*MessageStructure)(nil)).Elem(),
	StructureUser:        reflect.TypeOf((*UserStructure)(nil)).Elem(),
	StructureGuildMember: reflect.TypeOf((*GuildMemberStructure)(nil)).Elem(),
	StructureRole:        reflect.TypeOf((*RoleStructure)(nil)).Elem(),

	StructureChatInputCommandInteraction:          interactionInterface,
	StructureUserContextMenuCommandInteraction:    interactionInterface,
	StructureMessageContextMenuCommandInteraction: interactionInterface,
	StructurePrimaryEntryPointCommandInteraction:  interactionInterface,
	StructureButtonInteraction:                    interactionInterface,
	StructureStringSelectMenuInteraction:          interactionInterface,
	StructureUserSelectMenuInteraction:            interactionInterface,
	StructureRoleSelectMenuInteraction:            interactionInterface,
	StructureMentionableSelectMenuInteraction:     interactionInterface,
	StructureChannelSelectMenuInteraction:         interactionInterface,
	StructureAutocompleteInteraction:              interactionInterface,
	StructureModalSubmitInteraction:               interactionInterface,
}

func defaultClasses() map[StructureName]Class {
	return map[StructureName]Class{
		StructureGuild:       NewClass(NewGuild),
		StructureChannel:     NewClass(NewChannel),
		StructureMessage:     NewClass(NewMessage),
		StructureUser:        NewClass(NewUser),
		StructureGuildMember: NewClass(NewGuildMember),
		StructureRole:        NewClass(NewRole),

		StructureChatInputCommandInteraction:          NewClass(NewChatInputCommandInteraction),
		StructureUserContextMenuCommandInteraction:    NewClass(NewUserContextMenuCommandInteraction),
		StructureMessageContextMenuCommandInteraction: NewClass(NewMessageContextMenuCommandInteraction),
		StructurePrimaryEntryPointCommandInteraction:  NewClass(NewPrimaryEntryPointCommandInteraction),
		StructureButtonInteraction:                    NewClass(NewButtonInteraction),
		StructureStringSelectMenuInteraction:          NewClass(NewStringSelectMenuInteraction),
		StructureUserSelectMenuInteraction:            NewClass(NewUserSelectMenuInteraction),
		StructureRoleSelectMenuInteraction:            NewClass(NewRoleSelectMenuInteraction),
		StructureMentionableSelectMenuInteraction:     NewClass(NewMentionableSelectMenuInteraction),
		StructureChannelSelectMenuInteraction:         NewClass(NewChannelSelectMenuInteraction),
		StructureAutocompleteInteraction:              NewClass(NewAutocompleteInteraction),
		StructureModalSubmitInteraction:               NewClass(NewModalSubmitInteraction),
	}
}

// Structures maps every structure name to its active class. It is immutable
// and safe for concurrent use.
type Structures struct {
	classes map[StructureName]Class
}

// DefaultStructures returns structures without any overrides.
func DefaultStructures() *Structures {
	return NewStructuresBuilder().Build()
}

// Get returns the active class for name.
func (s *Structures) Get(name StructureName) (Class, error) {
	class, ok := s.classes[name]
	if !ok {
		return Class{}, fmt.Errorf("%w: %s", ErrUnknownStructure, name)
	}

	return class, nil
}

// Names returns every structure name in sorted order.
func (s *Structures) Names() []StructureName {
	names := make([]StructureName, 0, len(s.classes))

	for name := range s.classes {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	return names
}

// StructuresBuilder composes the default classes with overrides before a
// client starts handling events.
type StructuresBuilder struct {
	classes map[StructureName]Class
	built   *atomic.Bool
}

func NewStructuresBuilder() *StructuresBuilder {
	return &StructuresBuilder{
		classes: defaultClasses(),
		built:   atomic.NewBool(false),
	}
}

// Get returns the class currently registered for name.
func (b *StructuresBuilder) Get(name StructureName) (Class, error) {
	class, ok := b.classes[name]
	if !ok {
		return Class{}, fmt.Errorf("%w: %s", ErrUnknownStructure, name)
	}

	return class, nil
}

// Extend replaces the class of name with the one returned by transform, which
// receives the current class. The returned class must be or embed the current
// class and implement the interface of the structure. On error the mapping is
// left unchanged.
func (b *StructuresBuilder) Extend(name StructureName, transform func(base Class) Class) error {
	if b.built.Load() {
		return ErrStructuresBuilt
	}

	current, err := b.Get(name)
	if err != nil {
		return err
	}

	if transform == nil {
		return fmt.Errorf("%w: %s extender is nil", ErrInvalidExtension, name)
	}

	extended := transform(current)

	switch {
	case extended.err != nil:
		return fmt.Errorf("%s: %w", name, extended.err)
	case extended.IsZero():
		return fmt.Errorf("%w: %s extender did not return a class", ErrInvalidExtension, name)
	case !extended.Extends(current):
		return fmt.Errorf("%w: %s does not extend %s", ErrInvalidExtension, extended.typ, current.typ)
	case !extended.typ.Implements(structureInterfaces[name]):
		return fmt.Errorf("%w: %s does not implement %s", ErrInvalidExtension, extended.typ, structureInterfaces[name])
	}

	b.classes[name] = extended

	return nil
}

// Build freezes the builder and returns the resulting structures.
func (b *StructuresBuilder) Build() *Structures {
	b.built.Store(true)

	classes := make(map[StructureName]Class, len(b.classes))

	for name, class := range b.classes {
		classes[name] = class
	}

	return &Structures{
		classes: classes,
	}
}
