package policy

import "github.com/kamuz-01/Sistema-Feira/models"

// Ownable is implemented by resources tied to a single owning user.
type Ownable interface {
	OwnerUserID() uint
}

// Action identifies the mutating operation being authorized.
type Action string

const (
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// CanWrite reports whether the user may perform a mutating action on the
// resource. Moderators may modify anything; everyone else must own it.
// Edit and delete share this predicate.
func CanWrite(user *models.User, _ Action, resource Ownable) bool {
	if user == nil {
		return false
	}
	if user.IsModerador() {
		return true
	}
	return resource != nil && resource.OwnerUserID() == user.ID
}
