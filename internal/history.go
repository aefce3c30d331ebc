package internal

import "time"

// SelectSession finds the stored session with the given id. A missing id is
// a caller error and fails fast with ErrSessionNotFound.
func SelectSession(sessions []Session, id string) (*Session, error) {
	for i := range sessions {
		if sessions[i].ID == id {
			return &sessions[i], nil
		}
	}
	return nil, ErrSessionNotFound
}

// StartNewSession commits the active session to the history and returns a
// fresh welcome session. A session still holding only the welcome message
// is discarded, not committed.
func StartNewSession(sessions []Session, active *Session) ([]Session, *Session) {
	return commitSession(sessions, active), NewWelcomeSession()
}

// DeleteSession removes the session with the given id. Deleting an unknown
// id fails fast with ErrSessionNotFound.
func DeleteSession(sessions []Session, id string) ([]Session, error) {
	for i := range sessions {
		if sessions[i].ID == id {
			return append(sessions[:i], sessions[i+1:]...), nil
		}
	}
	return nil, ErrSessionNotFound
}

// Controller owns the read-modify-write cycle over the persistent store
// and the lifecycle of the active session. The store is never mutated
// ambiently; every operation loads, transforms, and saves.
type Controller struct {
	store  *Store
	active *Session
}

// NewController creates a controller with a fresh welcome session active.
func NewController(store *Store) *Controller {
	return &Controller{
		store:  store,
		active: NewWelcomeSession(),
	}
}

// Active returns the currently active session.
func (c *Controller) Active() *Session {
	return c.active
}

// History returns the committed sessions from the store.
func (c *Controller) History() ([]Session, error) {
	return c.store.LoadHistory()
}

// Select commits the current active session and activates the stored
// session with the given id.
func (c *Controller) Select(id string) (*Session, error) {
	sessions, err := c.store.LoadHistory()
	if err != nil {
		return nil, err
	}

	selected, err := SelectSession(sessions, id)
	if err != nil {
		return nil, err
	}

	// Commit the outgoing active session first, unless it is the one
	// being selected.
	if c.active != nil && c.active.ID != id && len(c.active.Messages) > 1 {
		sessions = commitSession(sessions, c.active)
		if err := c.store.SaveHistory(sessions); err != nil {
			return nil, err
		}
	}

	copied := *selected
	c.active = &copied
	return c.active, nil
}

// NewChat commits the active session (when it has more than the welcome
// message) and starts a fresh one.
func (c *Controller) NewChat() (*Session, error) {
	sessions, err := c.store.LoadHistory()
	if err != nil {
		return nil, err
	}

	sessions, fresh := StartNewSession(sessions, c.active)
	if err := c.store.SaveHistory(sessions); err != nil {
		return nil, err
	}

	c.active = fresh
	return fresh, nil
}

// Delete removes a stored session. If the deleted session was the active
// one, the active session resets to a fresh welcome session.
func (c *Controller) Delete(id string) error {
	sessions, err := c.store.LoadHistory()
	if err != nil {
		return err
	}

	sessions, err = DeleteSession(sessions, id)
	if err != nil {
		return err
	}
	if err := c.store.SaveHistory(sessions); err != nil {
		return err
	}

	if c.active != nil && c.active.ID == id {
		c.active = NewWelcomeSession()
	}
	return nil
}

// Commit persists the active session into the history without replacing
// it. Used when the chat loop exits.
func (c *Controller) Commit() error {
	if c.active == nil || len(c.active.Messages) <= 1 {
		return nil
	}

	sessions, err := c.store.LoadHistory()
	if err != nil {
		return err
	}

	return c.store.SaveHistory(commitSession(sessions, c.active))
}

// commitSession writes active into the session list. A session that was
// loaded from the store keeps its slot: committing an id already present
// overwrites that entry in place, so no two stored sessions ever share an
// id. New sessions are appended with a refreshed timestamp.
func commitSession(sessions []Session, active *Session) []Session {
	if active == nil || len(active.Messages) <= 1 {
		return sessions
	}
	for i := range sessions {
		if sessions[i].ID == active.ID {
			sessions[i] = *active
			return sessions
		}
	}
	active.Timestamp = time.Now().Format(time.RFC3339)
	return append(sessions, *active)
}
