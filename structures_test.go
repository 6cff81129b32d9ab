package sandwich_test

import (
	"testing"

	sandwich "github.com/WelcomerTeam/Sandwich-Interactions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MyGuild struct {
	*sandwich.Guild
}

func (g *MyGuild) Greeting() string {
	return "Welcome to " + g.Name
}

type MyButton struct {
	*sandwich.ButtonInteraction
}

// NotAGuild does not embed the guild structure.
type NotAGuild struct {
	*sandwich.Channel
}

func (n *NotAGuild) AsGuild() *sandwich.Guild { return nil }

func extendGuild(t *testing.T) *sandwich.Structures {
	t.Helper()

	builder := sandwich.NewStructuresBuilder()

	err := builder.Extend(sandwich.StructureGuild, func(base sandwich.Class) sandwich.Class {
		return sandwich.Derive(base, func(guild *sandwich.Guild) *MyGuild {
			return &MyGuild{Guild: guild}
		})
	})
	require.NoError(t, err)

	return builder.Build()
}

func TestDefaultStructures(t *testing.T) {
	t.Parallel()

	structures := sandwich.DefaultStructures()

	names := structures.Names()
	assert.Len(t, names, 18)

	for _, name := range names {
		class, err := structures.Get(name)
		require.NoError(t, err, name)
		assert.False(t, class.IsZero(), name)
	}

	class, err := structures.Get(sandwich.StructureGuild)
	require.NoError(t, err)
	assert.Equal(t, "*sandwich.Guild", class.Type().String())
}

func TestStructuresGetUnknown(t *testing.T) {
	t.Parallel()

	_, err := sandwich.DefaultStructures().Get("Sticker")
	assert.ErrorIs(t, err, sandwich.ErrUnknownStructure)

	err = sandwich.NewStructuresBuilder().Extend("Sticker", func(base sandwich.Class) sandwich.Class {
		return base
	})
	assert.ErrorIs(t, err, sandwich.ErrUnknownStructure)
}

func TestExtendReplacesClass(t *testing.T) {
	t.Parallel()

	structures := extendGuild(t)

	class, err := structures.Get(sandwich.StructureGuild)
	require.NoError(t, err)
	assert.Equal(t, "*sandwich_test.MyGuild", class.Type().String())
	assert.True(t, class.Extends(sandwich.NewClass(sandwich.NewGuild)))

	client := sandwich.NewClient(sandwich.ClientOptions{Structures: structures})

	guild, err := client.Guilds.Create([]byte(guildJSON))
	require.NoError(t, err)

	myGuild, ok := guild.(*MyGuild)
	require.True(t, ok, "expected *MyGuild, got %T", guild)
	assert.Equal(t, "Welcome to Sandwich", myGuild.Greeting())
	assert.Same(t, client, myGuild.Client())
	assert.Same(t, myGuild.Guild, guild.AsGuild())
}

func TestExtendIsCumulative(t *testing.T) {
	t.Parallel()

	type MyOtherGuild struct {
		*MyGuild
	}

	builder := sandwich.NewStructuresBuilder()

	require.NoError(t, builder.Extend(sandwich.StructureGuild, func(base sandwich.Class) sandwich.Class {
		return sandwich.Derive(base, func(guild *sandwich.Guild) *MyGuild {
			return &MyGuild{Guild: guild}
		})
	}))

	require.NoError(t, builder.Extend(sandwich.StructureGuild, func(base sandwich.Class) sandwich.Class {
		return sandwich.Derive(base, func(guild *MyGuild) *MyOtherGuild {
			return &MyOtherGuild{MyGuild: guild}
		})
	}))

	client := sandwich.NewClient(sandwich.ClientOptions{Structures: builder.Build()})

	guild, err := client.Guilds.Create([]byte(guildJSON))
	require.NoError(t, err)

	other, ok := guild.(*MyOtherGuild)
	require.True(t, ok, "expected *MyOtherGuild, got %T", guild)
	assert.Equal(t, "Welcome to Sandwich", other.Greeting())
}

func TestExtendRejectsInvalidClasses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		transform func(base sandwich.Class) sandwich.Class
	}{
		{
			name:      "nil transform",
			transform: nil,
		},
		{
			name: "zero class",
			transform: func(base sandwich.Class) sandwich.Class {
				return sandwich.Class{}
			},
		},
		{
			name: "unrelated class",
			transform: func(base sandwich.Class) sandwich.Class {
				return sandwich.NewClass(func(client *sandwich.Client, data []byte) (*NotAGuild, error) {
					return &NotAGuild{}, nil
				})
			},
		},
		{
			name: "sibling structure",
			transform: func(base sandwich.Class) sandwich.Class {
				return sandwich.NewClass(sandwich.NewChannel)
			},
		},
		{
			name: "mismatched parent",
			transform: func(base sandwich.Class) sandwich.Class {
				return sandwich.Derive(base, func(channel *sandwich.Channel) *NotAGuild {
					return &NotAGuild{Channel: channel}
				})
			},
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			builder := sandwich.NewStructuresBuilder()

			before, err := builder.Get(sandwich.StructureGuild)
			require.NoError(t, err)

			err = builder.Extend(sandwich.StructureGuild, test.transform)
			assert.ErrorIs(t, err, sandwich.ErrInvalidExtension)

			after, err := builder.Get(sandwich.StructureGuild)
			require.NoError(t, err)
			assert.Equal(t, before.Type(), after.Type())
		})
	}
}

func TestExtendAfterBuild(t *testing.T) {
	t.Parallel()

	builder := sandwich.NewStructuresBuilder()
	structures := builder.Build()

	err := builder.Extend(sandwich.StructureGuild, func(base sandwich.Class) sandwich.Class {
		return sandwich.Derive(base, func(guild *sandwich.Guild) *MyGuild {
			return &MyGuild{Guild: guild}
		})
	})
	assert.ErrorIs(t, err, sandwich.ErrStructuresBuilt)

	class, err := structures.Get(sandwich.StructureGuild)
	require.NoError(t, err)
	assert.Equal(t, "*sandwich.Guild", class.Type().String())
}

func TestExistingInstancesAreUnchanged(t *testing.T) {
	t.Parallel()

	before := sandwich.NewClient(sandwich.ClientOptions{})

	guild, err := before.Guilds.Create([]byte(guildJSON))
	require.NoError(t, err)

	_ = extendGuild(t)

	assert.IsType(t, &sandwich.Guild{}, guild)

	again, err := before.Guilds.Create([]byte(guildJSON))
	require.NoError(t, err)
	assert.IsType(t, &sandwich.Guild{}, again)
}

func TestZeroClassNew(t *testing.T) {
	t.Parallel()

	var class sandwich.Class

	structure, err := class.New(nil, []byte(`{}`))
	assert.Nil(t, structure)
	assert.ErrorIs(t, err, sandwich.ErrInvalidExtension)
	assert.Contains(t, err.Error(), "no constructor")
}
