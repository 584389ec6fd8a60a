package service

import (
	"github.com/google/uuid"
)

// IsOwner reports whether requesterID identifies the same user as authorID.
// Both ids are compared in canonical UUID form; ids that do not parse are
// compared verbatim.
func IsOwner(requesterID, authorID string) bool {
	return canonical(requesterID) == canonical(authorID)
}

func canonical(id string) string {
	if parsed, err := uuid.Parse(id); err == nil {
		return parsed.String()
	}
	return id
}
