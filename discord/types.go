package discord

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/WelcomerTeam/Sandwich-Interactions/sandwichjson"
	gotils_strconv "github.com/savsgio/gotils/strconv"
)

const (
	DiscordCreation = 1420070400000

	decimalBase = 10
	bitSize     = 64
)

var null = []byte("null")

// Snowflake is a discord ID. It is sent as a string but numbers are accepted.
type Snowflake int64

func (s *Snowflake) IsNil() bool {
	return *s == 0
}

func toSnowflake(b []byte, s *Snowflake) error {
	if len(b) == 0 || bytes.Equal(b, null) {
		*s = 0

		return nil
	}

	if b[0] == '"' && len(b) >= 2 {
		b = b[1 : len(b)-1]
	}

	if len(b) == 0 {
		*s = 0

		return nil
	}

	i, err := strconv.ParseInt(gotils_strconv.B2S(b), decimalBase, bitSize)
	if err != nil {
		return fmt.Errorf("failed to unmarshal json: %w", err)
	}

	*s = Snowflake(i)

	return nil
}

func (s *Snowflake) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, s)
}

func (s Snowflake) MarshalJSON() ([]byte, error) {
	return int64ToStringBytes(int64(s)), nil
}

func (s Snowflake) String() string {
	return strconv.FormatInt(int64(s), decimalBase)
}

// Time returns the creation time of the Snowflake.
func (s Snowflake) Time() time.Time {
	nsec := (int64(s) >> 22) + DiscordCreation

	return time.Unix(0, nsec*1000000)
}

// Int64 allows for string marshalling of large integers such as permissions.
type Int64 int64

func (in *Int64) UnmarshalJSON(b []byte) error {
	var s Snowflake

	if err := toSnowflake(b, &s); err != nil {
		return err
	}

	*in = Int64(s)

	return nil
}

func (in Int64) MarshalJSON() ([]byte, error) {
	return int64ToStringBytes(int64(in)), nil
}

func (in Int64) String() string {
	return strconv.FormatInt(int64(in), decimalBase)
}

func int64ToStringBytes(s int64) []byte {
	buf := make([]byte, 0, 24) // maxInt64JsonLength + 2

	buf = append(buf, '"')
	buf = strconv.AppendInt(buf, s, decimalBase)
	buf = append(buf, '"')

	return buf
}

type Timestamp string

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t == "" {
		return null, nil
	}

	if _, err := time.Parse(time.RFC3339, string(t)); err != nil {
		return null, nil
	}

	return sandwichjson.Marshal(string(t))
}

// Time parses the timestamp. An empty or corrupted timestamp returns the zero time.
func (t Timestamp) Time() time.Time {
	parsed, _ := time.Parse(time.RFC3339, string(t))

	return parsed
}

// List always marshals to an array, never null.
type List[T any] []T

func (l List[T]) MarshalJSON() ([]byte, error) {
	if len(l) == 0 {
		return []byte("[]"), nil
	}

	return sandwichjson.Marshal([]T(l))
}

type SnowflakeList = List[Snowflake]
type StringList = List[string]
type RoleList = List[Role]
type EmojiList = List[Emoji]
type GuildMemberList = List[GuildMember]
type ChannelList = List[Channel]
type UserList = List[User]
