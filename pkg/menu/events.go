package menu

import "github.com/google/uuid"

// UserLoggedInEvent is published once a login completes and a fresh
// permission context exists for the user.
type UserLoggedInEvent struct {
	UserID uuid.UUID
}

// PermissionsReloadedEvent is published after an explicit permission reload
// for one user.
type PermissionsReloadedEvent struct {
	UserID uuid.UUID
}

// NavigationUpdatedEvent is published when the navigation source announces a
// new tree version.
type NavigationUpdatedEvent struct {
	Version string
}
