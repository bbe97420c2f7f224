package models

// UserRole defines the roles a user can hold
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleManager  UserRole = "manager"
	UserRoleEmployee UserRole = "employee"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleManager, UserRoleEmployee:
		return true
	}
	return false
}

// AllocationType tags what an allocation grants. Only AllocationTypeOwner
// transfers the asset's recorded owner; any other value is a non-owning allocation.
type AllocationType string

const (
	AllocationTypeOwner     AllocationType = "Owner"
	AllocationTypeTemporary AllocationType = "Temporary"
)

// TransfersOwnership reports whether approving an allocation of this type moves asset ownership
func (t AllocationType) TransfersOwnership() bool {
	return t == AllocationTypeOwner
}

// AllocationStatus is the single source of truth for an allocation's workflow state
type AllocationStatus string

const (
	AllocationStatusPending  AllocationStatus = "pending"
	AllocationStatusApproved AllocationStatus = "approved"
	AllocationStatusRejected AllocationStatus = "rejected"
)

// IsValid checks if the AllocationStatus is valid
func (s AllocationStatus) IsValid() bool {
	switch s {
	case AllocationStatusPending, AllocationStatusApproved, AllocationStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is expected from this status
func (s AllocationStatus) IsTerminal() bool {
	return s == AllocationStatusApproved || s == AllocationStatusRejected
}

// RequestStatus returns the legacy boolean rendering of the status:
// nil while pending, true when approved, false when rejected.
func (s AllocationStatus) RequestStatus() *bool {
	switch s {
	case AllocationStatusApproved:
		v := true
		return &v
	case AllocationStatusRejected:
		v := false
		return &v
	}
	return nil
}
