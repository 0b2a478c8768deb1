package entities

import (
	"errors"
	"strings"
)

var ErrInvalidOrganizationID = errors.New("invalid organization id")

// Tenant is the isolation boundary every operation runs under.
//
// The organization id is unexported so a Tenant can only be obtained through
// NewTenant; repositories are bound to one Tenant when a unit of work starts,
// which keeps cross-tenant reads out of reach of the use cases.
type Tenant struct {
	orgID string
}

func NewTenant(organizationID string) (Tenant, error) {
	organizationID = strings.TrimSpace(organizationID)
	if organizationID == "" {
		return Tenant{}, ErrInvalidOrganizationID
	}
	return Tenant{orgID: organizationID}, nil
}

// MustTenant is NewTenant for fixtures and wiring code.
func MustTenant(organizationID string) Tenant {
	t, err := NewTenant(organizationID)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Tenant) OrganizationID() string { return t.orgID }

func (t Tenant) IsZero() bool { return t.orgID == "" }

func (t Tenant) String() string { return t.orgID }

// Owns reports whether an entity's organization id belongs to this tenant.
func (t Tenant) Owns(organizationID string) bool {
	return t.orgID != "" && t.orgID == organizationID
}
