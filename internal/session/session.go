// Package session persists the conversation thread id between runs. The id is
// an opaque token minted by the agent server; the client never inspects or
// validates it, only carries it along with each request.
package session

const threadKey = "thread_id"

// Manager binds a Store to the single thread-id slot this client keeps.
// An absent id is represented by key absence, never by a sentinel value.
type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Load returns the persisted thread id, or "" when no conversation exists yet.
func (m *Manager) Load() (string, error) {
	value, ok, err := m.store.Get(threadKey)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return value, nil
}

// Save persists the thread id. Saving "" clears the slot, so a fresh
// conversation starts on the next send.
func (m *Manager) Save(id string) error {
	if id == "" {
		return m.store.Delete(threadKey)
	}
	return m.store.Set(threadKey, id)
}
