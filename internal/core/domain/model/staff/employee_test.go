package staff_test

import (
	"testing"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/staff"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, raw int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(raw)
	require.NoError(t, err)
	return id
}

func mustPlate(t *testing.T, raw string) *fleet.Plate {
	t.Helper()
	p, err := fleet.NewPlate(raw)
	require.NoError(t, err)
	return &p
}

const (
	testCPF        = "39053344705"
	testDepartment = "Operations"
)

func TestNewEmployee_RoleReferences(t *testing.T) {
	personID := mustID(t, 1)
	hqID := mustID(t, 3)

	t.Run("driver may carry a vehicle", func(t *testing.T) {
		e, err := staff.NewEmployee(personID, testCPF, testDepartment, staff.Driver, mustPlate(t, "ABC1D23"), nil)
		require.NoError(t, err)
		assert.Equal(t, testCPF, e.CPF())
		assert.Equal(t, testDepartment, e.Department())
		require.NotNil(t, e.VehiclePlate())
		assert.Nil(t, e.HeadquartersID())

		// A driver without a vehicle yet is fine.
		e, err = staff.NewEmployee(personID, testCPF, testDepartment, staff.Driver, nil, nil)
		require.NoError(t, err)
		assert.Nil(t, e.VehiclePlate())

		_, err = staff.NewEmployee(personID, testCPF, testDepartment, staff.Driver, mustPlate(t, "ABC1D23"), &hqID)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("site roles may carry a headquarters", func(t *testing.T) {
		for _, role := range []staff.Role{staff.LogisticsAssistant, staff.Attendant, staff.Manager} {
			e, err := staff.NewEmployee(personID, testCPF, testDepartment, role, nil, &hqID)
			require.NoError(t, err)
			require.NotNil(t, e.HeadquartersID())
			assert.Nil(t, e.VehiclePlate())

			// Not yet assigned to a site is fine.
			e, err = staff.NewEmployee(personID, testCPF, testDepartment, role, nil, nil)
			require.NoError(t, err)
			assert.Nil(t, e.HeadquartersID())

			_, err = staff.NewEmployee(personID, testCPF, testDepartment, role, mustPlate(t, "ABC1D23"), &hqID)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("admin takes neither", func(t *testing.T) {
		e, err := staff.NewEmployee(personID, testCPF, testDepartment, staff.Admin, nil, nil)
		require.NoError(t, err)
		assert.Nil(t, e.VehiclePlate())
		assert.Nil(t, e.HeadquartersID())

		_, err = staff.NewEmployee(personID, testCPF, testDepartment, staff.Admin, mustPlate(t, "ABC1D23"), nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = staff.NewEmployee(personID, testCPF, testDepartment, staff.Admin, nil, &hqID)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("missing cpf or department", func(t *testing.T) {
		_, err := staff.NewEmployee(personID, "", testDepartment, staff.Admin, nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = staff.NewEmployee(personID, testCPF, "", staff.Admin, nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := staff.NewEmployee(personID, testCPF, testDepartment, staff.UnknownRole, nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var e staff.Employee
		require.ErrorIs(t, e.Validate(), staff.ErrEmployeeIsNotConstructed)
	})
}

func TestEmployee_Reassign(t *testing.T) {
	personID := mustID(t, 1)
	hqID := mustID(t, 3)

	e, err := staff.NewEmployee(personID, testCPF, testDepartment, staff.Driver, mustPlate(t, "ABC1D23"), nil)
	require.NoError(t, err)

	// Driver moves to a site role: plate is dropped, headquarters set.
	require.NoError(t, e.Reassign("Retail", staff.Attendant, nil, &hqID))
	assert.Equal(t, staff.Attendant, e.Role())
	assert.Equal(t, "Retail", e.Department())
	assert.Equal(t, testCPF, e.CPF())
	assert.Nil(t, e.VehiclePlate())
	require.NotNil(t, e.HeadquartersID())

	// Mismatched references are rejected without mutating the employee.
	require.Error(t, e.Reassign("Fleet", staff.Driver, nil, &hqID))
	assert.Equal(t, staff.Attendant, e.Role())
	assert.Equal(t, "Retail", e.Department())
}

func TestEmployee_Reassign_UnassignsVehicle(t *testing.T) {
	personID := mustID(t, 1)

	e, err := staff.NewEmployee(personID, testCPF, testDepartment, staff.Driver, mustPlate(t, "ABC1D23"), nil)
	require.NoError(t, err)

	// The driver keeps the role but hands the vehicle back.
	require.NoError(t, e.Reassign(testDepartment, staff.Driver, nil, nil))
	assert.Equal(t, staff.Driver, e.Role())
	assert.Nil(t, e.VehiclePlate())
}

func TestParseRole(t *testing.T) {
	for _, tc := range []struct {
		raw  string
		want staff.Role
	}{
		{"Driver", staff.Driver},
		{"LogisticsAssistant", staff.LogisticsAssistant},
		{"Attendant", staff.Attendant},
		{"Manager", staff.Manager},
		{"Admin", staff.Admin},
	} {
		r, err := staff.ParseRole(tc.raw)
		require.NoError(t, err)
		assert.Equal(t, tc.want, r)
	}

	_, err := staff.ParseRole("Intern")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
