package domain

import "time"

// Client is a catalog entry for a person holding allocations. The email is
// the natural key used during reconciliation; the id is database identity.
type Client struct {
	ID        int64
	Name      string
	Email     string
	Status    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClientPatch is a partial update. A nil field means "leave unchanged",
// never "set to zero value".
type ClientPatch struct {
	Name   *string
	Email  *string
	Status *bool
}

// IsEmpty reports whether the patch carries no changes.
func (p ClientPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Status == nil
}
