// Package account holds login accounts and the rules tying an account's role
// to the holder's registration as client or employee.
package account

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/staff"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrAccountIsNotConstructed is returned when using an Account that was not
// created via NewAccount or RestoreAccount.
var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

// Role is what an account lets its holder do.
type Role int

const (
	// UnknownRole catches uninitialized values.
	UnknownRole Role = iota

	// ClientRole is held by registered clients.
	ClientRole

	// DriverRole mirrors the Driver employee role.
	DriverRole

	// LogisticsAssistantRole mirrors the LogisticsAssistant employee role.
	LogisticsAssistantRole

	// AttendantRole mirrors the Attendant employee role.
	AttendantRole

	// ManagerRole mirrors the Manager employee role.
	ManagerRole

	// AdminRole is held by Admin employees, and also grantable to Managers.
	AdminRole
)

func roleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole:            "Unknown",
		ClientRole:             "Client",
		DriverRole:             "Driver",
		LogisticsAssistantRole: "LogisticsAssistant",
		AttendantRole:          "Attendant",
		ManagerRole:            "Manager",
		AdminRole:              "Admin",
	}
}

// ParseRole converts the persisted representation back to a Role.
func ParseRole(s string) (Role, error) {
	for r, str := range roleStrings() {
		if str == s && r != UnknownRole {
			return r, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid account role", s))
}

// Validate checks the role is one of the valid values.
func (r Role) Validate() error {
	switch r {
	case ClientRole, DriverRole, LogisticsAssistantRole, AttendantRole, ManagerRole, AdminRole:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%d is not a valid account role", r))
}

// IsStaff reports whether the role requires the holder to be an employee.
func (r Role) IsStaff() bool {
	return r != ClientRole && r != UnknownRole
}

// MatchesEmployee reports whether this account role is consistent with the
// holder's employee role. Roles match their namesake; Admin accounts are
// additionally open to Managers.
func (r Role) MatchesEmployee(employeeRole staff.Role) bool {
	switch r {
	case DriverRole:
		return employeeRole == staff.Driver
	case LogisticsAssistantRole:
		return employeeRole == staff.LogisticsAssistant
	case AttendantRole:
		return employeeRole == staff.Attendant
	case ManagerRole:
		return employeeRole == staff.Manager
	case AdminRole:
		return employeeRole == staff.Admin || employeeRole == staff.Manager
	}
	return false
}

// String implements fmt.Stringer.
func (r Role) String() string {
	if s, ok := roleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// Account is a login for a registered person, keyed by the person's id.
// The stored password is always a hash, never the plain text.
type Account struct {
	personID     kernel.ID
	username     string
	passwordHash string
	role         Role

	guard guard.ConstructorGuard
}

// NewAccount creates an account. The caller hashes the password first; this
// constructor rejects an empty hash but cannot tell hash from plain text.
func NewAccount(personID kernel.ID, username, passwordHash string, role Role) (*Account, error) {
	a := &Account{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		a.setPersonID(personID),
		a.setUsername(username),
		a.setPasswordHash(passwordHash),
		a.setRole(role),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAccount reconstructs a persisted account.
func RestoreAccount(personID kernel.ID, username, passwordHash string, role Role) (*Account, error) {
	return NewAccount(personID, username, passwordHash, role)
}

// PersonID returns the holder's person id.
func (a *Account) PersonID() kernel.ID {
	return a.personID
}

func (a *Account) Username() string { return a.username }
func (a *Account) PasswordHash() string { return a.passwordHash }
func (a *Account) Role() Role { return a.role }

// ChangePassword swaps in a new password hash.
func (a *Account) ChangePassword(passwordHash string) error {
	return a.setPasswordHash(passwordHash)
}

func (a *Account) setPersonID(personID kernel.ID) error {
	if err := personID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("personId", err)
	}
	a.personID = personID
	return nil
}

func (a *Account) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	a.username = username
	return nil
}

func (a *Account) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	a.passwordHash = passwordHash
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}

// Validate checks that the account was properly constructed.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}
