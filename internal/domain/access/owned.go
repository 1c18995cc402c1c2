package access

// Owned is implemented by every document that belongs to a single user.
type Owned interface {
	OwnerID() string
}

// Authorize applies EnsureOwner to a loaded document.
func Authorize(doc Owned, callerID string) error {
	return EnsureOwner(doc.OwnerID(), callerID)
}
