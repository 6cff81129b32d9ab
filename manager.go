package sandwich

// Manager constructs records of one structure. The class is resolved through
// the structures of the client on every call, so overrides apply to every
// record it creates.
type Manager[T Structure] struct {
	client *Client
	name   StructureName
}

func NewManager[T Structure](client *Client, name StructureName) *Manager[T] {
	return &Manager[T]{
		client: client,
		name:   name,
	}
}

func (m *Manager[T]) Name() StructureName {
	return m.name
}

// Create constructs a record from its raw wire payload.
func (m *Manager[T]) Create(data []byte) (T, error) {
	class, err := m.client.Structures.Get(m.name)
	if err != nil {
		var zero T

		return zero, err
	}

	return Construct[T](m.client, class, data)
}
