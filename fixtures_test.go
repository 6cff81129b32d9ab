package sandwich_test

import (
	"context"
	"fmt"
	"testing"

	sandwich "github.com/WelcomerTeam/Sandwich-Interactions"
)

const (
	guildJSON = `{"id":"300","name":"Sandwich","owner_id":"500","unavailable":false}`

	memberJSON = `{"user":{"id":"500","username":"alice","global_name":"Alice"},"nick":"ali","roles":["700"],"joined_at":"2020-01-01T00:00:00Z","permissions":"8"}`

	messageJSON = `{"id":"600","channel_id":"400","content":"pick one","author":{"id":"800","username":"bot"},` +
		`"components":[{"type":1,"components":[` +
		`{"type":2,"style":1,"custom_id":"accept","label":"Accept"},` +
		`{"type":2,"style":4,"custom_id":"decline","label":"Decline"}]}]}`
)

func interactionJSON(interactionType int, data string) []byte {
	payload := `{"id":"100","application_id":"200","type":%d,"token":"token","version":1,` +
		`"guild_id":"300","channel_id":"400","channel":{"id":"400","type":0,"name":"general"},` +
		`"member":` + memberJSON + `,"message":` + messageJSON + `,"locale":"en-GB"`

	if data != "" {
		payload += `,"data":` + data
	}

	return []byte(fmt.Sprintf(payload+"}", interactionType))
}

func buttonJSON() []byte {
	return interactionJSON(3, `{"custom_id":"accept","component_type":2}`)
}

func producedJSON(eventType string, data []byte) []byte {
	return []byte(fmt.Sprintf(`{"op":0,"t":%q,"s":1,"d":%s,"__metadata":{"i":"welcomer","a":"welcomer","id":"200","s":[0,1,2]},"__extra":{},"__trace":{}}`, eventType, data))
}

// recorder collects everything published by a client.
type recorder struct {
	interactions []sandwich.Interaction
	debug        []*sandwich.DebugEvent
	guilds       []sandwich.GuildStructure
	messages     []sandwich.MessageStructure
}

func newRecordedClient(t *testing.T, structures *sandwich.Structures) (*sandwich.Client, *recorder) {
	t.Helper()

	client := sandwich.NewClient(sandwich.ClientOptions{Structures: structures})
	r := &recorder{}

	client.InteractionCreate.Subscribe(func(_ context.Context, interaction sandwich.Interaction) {
		r.interactions = append(r.interactions, interaction)
	})

	client.Debug.Subscribe(func(_ context.Context, event *sandwich.DebugEvent) {
		r.debug = append(r.debug, event)
	})

	client.GuildCreate.Subscribe(func(_ context.Context, guild sandwich.GuildStructure) {
		r.guilds = append(r.guilds, guild)
	})

	client.GuildUpdate.Subscribe(func(_ context.Context, guild sandwich.GuildStructure) {
		r.guilds = append(r.guilds, guild)
	})

	client.MessageCreate.Subscribe(func(_ context.Context, message sandwich.MessageStructure) {
		r.messages = append(r.messages, message)
	})

	return client, r
}
