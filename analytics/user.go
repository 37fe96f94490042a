package analytics

import "sync"

// User is the host-owned identity context: an id and accumulated traits.
type User struct {
	id     string
	traits map[string]any
	mu     sync.RWMutex
}

// NewUser creates an anonymous user with no traits
func NewUser() *User {
	return &User{
		traits: make(map[string]any),
	}
}

// ID returns the current user id, empty when anonymous.
func (u *User) ID() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.id
}

// SetID sets the user id without touching traits.
func (u *User) SetID(id string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.id = id
}

// Traits returns all traits as a copy
func (u *User) Traits() map[string]any {
	u.mu.RLock()
	defer u.mu.RUnlock()

	result := make(map[string]any, len(u.traits))
	for k, v := range u.traits {
		result[k] = v
	}
	return result
}

// Identify merges traits into the current ones while the id stays the same.
// Identifying as a different user replaces the traits. An empty id keeps
// the current one.
func (u *User) Identify(id string, traits map[string]any) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.id != "" && id != "" && id != u.id {
		u.traits = make(map[string]any, len(traits))
	}
	if id != "" {
		u.id = id
	}
	for k, v := range traits {
		u.traits[k] = v
	}
}

// Reset forgets the id and all traits
func (u *User) Reset() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.id = ""
	u.traits = make(map[string]any)
}
