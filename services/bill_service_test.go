package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tulayan-http-service/models"
)

func seedTenancy(t *testing.T, db *gorm.DB) (*models.Tenant, *models.Particular) {
	t.Helper()

	user := seedUser(t, db, "tenant@t.com")
	unit := seedUnit(t, db, "Unit 2B")
	tenant := &models.Tenant{UnitID: unit.ID, UserID: user.ID}
	require.NoError(t, db.Create(tenant).Error)

	particular := &models.Particular{Description: "Monthly Rent"}
	require.NoError(t, db.Create(particular).Error)
	return tenant, particular
}

func TestBillBalanceWithoutPayments(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBillService(db, testConfig())

	tenant, particular := seedTenancy(t, db)

	bill, err := svc.CreateBill(tenant.ID, "2026-09-01", particular.ID, 3500)
	require.NoError(t, err)

	// 没有任何付款时余额等于应付金额
	row, err := svc.GetBillByID(bill.ID)
	require.NoError(t, err)
	assert.Equal(t, 3500.0, row.AmountDue)
	assert.Equal(t, 3500.0, row.Balance)
	assert.Equal(t, "Monthly Rent", row.Particular)
}

func TestBillBalanceSubtractsPayments(t *testing.T) {
	db := setupTestDB(t)
	bills := NewBillService(db, testConfig())
	payments := NewPaymentService(db, testConfig())

	tenant, particular := seedTenancy(t, db)

	bill, err := bills.CreateBill(tenant.ID, "2026-09-01", particular.ID, 3500)
	require.NoError(t, err)

	_, err = payments.CreatePayment(bill.ID, 1000, "2026-09-05", "Partial")
	require.NoError(t, err)
	_, err = payments.CreatePayment(bill.ID, 500, "2026-09-10", "Partial")
	require.NoError(t, err)

	row, err := bills.GetBillByID(bill.ID)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, row.Balance)

	// 多付产生负余额
	_, err = payments.CreatePayment(bill.ID, 2500, "2026-09-15", "Overpay")
	require.NoError(t, err)

	row, err = bills.GetBillByID(bill.ID)
	require.NoError(t, err)
	assert.Equal(t, -500.0, row.Balance)
}

func TestGetBillsByTenantAndUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBillService(db, testConfig())

	tenant, particular := seedTenancy(t, db)

	_, err := svc.CreateBill(tenant.ID, "2026-08-01", particular.ID, 3500)
	require.NoError(t, err)
	_, err = svc.CreateBill(tenant.ID, "2026-09-01", particular.ID, 3500)
	require.NoError(t, err)

	byTenant, err := svc.GetBillsByTenant(tenant.ID)
	require.NoError(t, err)
	assert.Len(t, byTenant, 2)

	byUser, err := svc.GetBillsByUser(tenant.UserID)
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	// 其他用户名下没有账单
	byUser, err = svc.GetBillsByUser(9999)
	require.NoError(t, err)
	assert.Empty(t, byUser)
}

func TestUpdateBill(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBillService(db, testConfig())

	tenant, particular := seedTenancy(t, db)

	bill, err := svc.CreateBill(tenant.ID, "2026-09-01", particular.ID, 3500)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateBill(bill.ID, "2026-09-02", particular.ID, 4000))

	row, err := svc.GetBillByID(bill.ID)
	require.NoError(t, err)
	assert.Equal(t, 4000.0, row.AmountDue)
	assert.Equal(t, "2026-09-02", row.Date)

	assert.ErrorIs(t, svc.UpdateBill(9999, "2026-09-02", particular.ID, 4000), ErrBillNotFound)
	_, err = svc.GetBillByID(9999)
	assert.ErrorIs(t, err, ErrBillNotFound)
}

func TestCreatePaymentRequiresExistingBill(t *testing.T) {
	db := setupTestDB(t)
	payments := NewPaymentService(db, testConfig())

	_, err := payments.CreatePayment(9999, 100, "2026-09-01", "Ghost")
	assert.ErrorIs(t, err, ErrBillNotFound)
}

func TestGetPaymentsByBill(t *testing.T) {
	db := setupTestDB(t)
	bills := NewBillService(db, testConfig())
	payments := NewPaymentService(db, testConfig())

	tenant, particular := seedTenancy(t, db)
	bill, err := bills.CreateBill(tenant.ID, "2026-09-01", particular.ID, 3500)
	require.NoError(t, err)

	created, err := payments.CreatePayment(bill.ID, 1000, "2026-09-05", "Partial")
	require.NoError(t, err)

	list, err := payments.GetPaymentsByBill(bill.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1000.0, list[0].AmountPaid)

	got, err := payments.GetPaymentByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, bill.ID, got.BillID)

	_, err = payments.GetPaymentByID(9999)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}
