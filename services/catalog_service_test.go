package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticularCRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewParticularService(db, testConfig())

	created, err := svc.CreateParticular("Monthly Rent")
	require.NoError(t, err)

	got, err := svc.GetParticularByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Monthly Rent", got.Description)

	require.NoError(t, svc.UpdateParticular(created.ID, "Water Bill"))
	got, err = svc.GetParticularByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Water Bill", got.Description)

	all, err := svc.GetAllParticulars()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.DeleteParticular(created.ID))
	_, err = svc.GetParticularByID(created.ID)
	assert.ErrorIs(t, err, ErrParticularNotFound)

	assert.ErrorIs(t, svc.UpdateParticular(9999, "x"), ErrParticularNotFound)
	assert.ErrorIs(t, svc.DeleteParticular(9999), ErrParticularNotFound)
}

func TestOccupationCRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOccupationService(db, testConfig())

	created, err := svc.CreateOccupation("Engineer")
	require.NoError(t, err)

	got, err := svc.GetOccupationByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Engineer", got.Description)

	require.NoError(t, svc.UpdateOccupation(created.ID, "Teacher"))

	all, err := svc.GetAllOccupations()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Teacher", all[0].Description)

	require.NoError(t, svc.DeleteOccupation(created.ID))
	_, err = svc.GetOccupationByID(created.ID)
	assert.ErrorIs(t, err, ErrOccupationNotFound)
}

func TestUnitCRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUnitService(db, testConfig())

	created, err := svc.CreateUnit("Unit 3C, 3rd floor", "unit-3c.jpg")
	require.NoError(t, err)

	got, err := svc.GetUnitByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Unit 3C, 3rd floor", got.Description)
	assert.Equal(t, "unit-3c.jpg", got.Image)

	require.NoError(t, svc.UpdateUnit(created.ID, "Unit 3C renovated", "unit-3c-new.jpg"))
	got, err = svc.GetUnitByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Unit 3C renovated", got.Description)

	require.NoError(t, svc.DeleteUnit(created.ID))
	_, err = svc.GetUnitByID(created.ID)
	assert.ErrorIs(t, err, ErrUnitNotFound)

	assert.ErrorIs(t, svc.UpdateUnit(9999, "x", ""), ErrUnitNotFound)
	assert.ErrorIs(t, svc.DeleteUnit(9999), ErrUnitNotFound)
}

func TestTenantLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTenantService(db, testConfig())

	user := seedUser(t, db, "tenant@t.com")
	unitA := seedUnit(t, db, "Unit 1A")
	unitB := seedUnit(t, db, "Unit 1B")

	tenant, err := svc.CreateTenant(unitA.ID, user.ID)
	require.NoError(t, err)

	row, err := svc.GetTenantByID(tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, "Unit 1A", row.UnitDesc)
	assert.Equal(t, user.ID, row.UserID)

	byUser, err := svc.GetTenantByUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, byUser.ID)

	// 换单元
	require.NoError(t, svc.UpdateTenant(tenant.ID, unitB.ID, user.ID))
	row, err = svc.GetTenantByID(tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, "Unit 1B", row.UnitDesc)

	all, err := svc.GetAllTenants()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// 退租
	require.NoError(t, svc.DeleteTenant(tenant.ID))
	_, err = svc.GetTenantByID(tenant.ID)
	assert.ErrorIs(t, err, ErrTenantNotFound)
}
