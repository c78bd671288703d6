package repository_test

import (
	"context"
	"testing"
	"time"

	"restaurant/database/dbtest"
	"restaurant/model"
	"restaurant/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	ctx      context.Context
	store    *repository.Store
	customer *model.Customer
	staff    *model.Staff
	table    *model.Table
	item     *model.MenuItem
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{ctx: context.Background(), store: repository.NewStore(dbtest.New(t))}

	f.customer = &model.Customer{Username: "alice", PasswordHash: "x", FullName: "Alice Smith", Email: "alice@example.com", Role: model.CustomerRegular}
	require.NoError(t, f.store.Customers.Create(f.ctx, f.customer))

	f.staff = &model.Staff{Username: "bob", PasswordHash: "x", FullName: "Bob Cook", Email: "bob@example.com", Role: model.StaffChef, Salary: decimal.RequireFromString("5000.00"), HireDate: time.Now()}
	require.NoError(t, f.store.Staff.Create(f.ctx, f.staff))

	f.table = &model.Table{Number: "T01", Size: 4}
	require.NoError(t, f.store.Tables.Create(f.ctx, f.table))

	f.item = &model.MenuItem{Name: "Soup", Type: model.ItemFood, Price: decimal.RequireFromString("12.50"), IsAvailable: true}
	require.NoError(t, f.store.MenuItems.Create(f.ctx, f.item))
	return f
}

func (f *fixture) order(t *testing.T) *model.Order {
	t.Helper()
	order := &model.Order{CustomerID: f.customer.ID, TableID: f.table.ID, StaffID: &f.staff.ID, OrderDate: time.Now(), Status: model.OrderPending}
	require.NoError(t, f.store.Orders.Create(f.ctx, order))
	return order
}

func TestCRUDRoundTrip(t *testing.T) {
	f := newFixture(t)

	got, err := f.store.Tables.GetByID(f.ctx, f.table.ID)
	require.NoError(t, err)
	assert.Equal(t, "T01", got.Number)
	assert.False(t, got.IsOccupied)

	got.Size = 6
	require.NoError(t, f.store.Tables.Update(f.ctx, got))
	again, err := f.store.Tables.GetByID(f.ctx, f.table.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, again.Size)

	require.NoError(t, f.store.Tables.Delete(f.ctx, f.table.ID))
	_, err = f.store.Tables.GetByID(f.ctx, f.table.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, f.store.Tables.Delete(f.ctx, f.table.ID), repository.ErrNotFound)
}

func TestListPaginates(t *testing.T) {
	f := newFixture(t)
	for _, number := range []string{"T02", "T03", "T04"} {
		require.NoError(t, f.store.Tables.Create(f.ctx, &model.Table{Number: number, Size: 2}))
	}

	page, err := f.store.Tables.List(f.ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "T02", page[0].Number)
	assert.Equal(t, "T03", page[1].Number)

	n, err := f.store.Tables.Count(f.ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, n)
}

func TestUniqueConstraintIsDuplicate(t *testing.T) {
	f := newFixture(t)
	err := f.store.Tables.Create(f.ctx, &model.Table{Number: "T01", Size: 2})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestCustomerLookups(t *testing.T) {
	f := newFixture(t)

	byName, err := f.store.Customers.FindByUsername(f.ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, f.customer.ID, byName.ID)

	_, err = f.store.Customers.FindByEmail(f.ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	exists, err := f.store.Customers.ExistsByEmail(f.ctx, "alice@example.com", 0)
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = f.store.Customers.ExistsByEmail(f.ctx, "alice@example.com", f.customer.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	found, err := f.store.Customers.SearchByName(f.ctx, "smi")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	require.NoError(t, f.store.Customers.UpdateRole(f.ctx, f.customer.ID, model.CustomerVIP))
	promoted, err := f.store.Customers.GetByID(f.ctx, f.customer.ID)
	require.NoError(t, err)
	assert.Equal(t, model.CustomerVIP, promoted.Role)
	assert.ErrorIs(t, f.store.Customers.UpdateRole(f.ctx, 999, model.CustomerVIP), repository.ErrNotFound)
}

func TestTableOccupancyLookups(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Tables.Create(f.ctx, &model.Table{Number: "T02", Size: 4}))

	_, err := f.store.Tables.SetOccupied(f.ctx, f.table.ID, true)
	require.NoError(t, err)

	available, err := f.store.Tables.FindAvailableBySize(f.ctx, 4)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "T02", available[0].Number)

	occupied, err := f.store.Tables.FindByOccupied(f.ctx, true)
	require.NoError(t, err)
	require.Len(t, occupied, 1)
	assert.Equal(t, f.table.ID, occupied[0].ID)

	_, err = f.store.Tables.SetOccupied(f.ctx, 999, true)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSumItemSubtotals(t *testing.T) {
	f := newFixture(t)
	order := f.order(t)

	total, err := f.store.Orders.SumItemSubtotals(f.ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, total.IsZero())

	drink := &model.MenuItem{Name: "Tea", Type: model.ItemDrink, Price: decimal.RequireFromString("3.25"), IsAvailable: true}
	require.NoError(t, f.store.MenuItems.Create(f.ctx, drink))
	for _, line := range []struct {
		item *model.MenuItem
		qty  int
	}{{f.item, 2}, {drink, 3}} {
		oi := &model.OrderItem{OrderID: order.ID, MenuItemID: line.item.ID, Quantity: line.qty, UnitPrice: line.item.Price}
		oi.CalculateSubtotal()
		require.NoError(t, f.store.OrderItems.Create(f.ctx, oi))
	}

	total, err = f.store.Orders.SumItemSubtotals(f.ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("34.75").Equal(total), total.String())

	withItems, err := f.store.Orders.GetWithItems(f.ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, withItems.Items, 2)

	line, err := f.store.OrderItems.FindByOrderAndMenuItem(f.ctx, order.ID, drink.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, line.Quantity)

	n, err := f.store.OrderItems.CountByMenuItem(f.ctx, f.item.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestDeletingCustomerCascades(t *testing.T) {
	f := newFixture(t)
	order := f.order(t)
	oi := &model.OrderItem{OrderID: order.ID, MenuItemID: f.item.ID, Quantity: 1, UnitPrice: f.item.Price}
	oi.CalculateSubtotal()
	require.NoError(t, f.store.OrderItems.Create(f.ctx, oi))
	require.NoError(t, f.store.VipRequests.Create(f.ctx, &model.VipRequest{CustomerID: f.customer.ID, Status: model.VipPending}))

	require.NoError(t, f.store.Customers.Delete(f.ctx, f.customer.ID))

	_, err := f.store.Orders.GetByID(f.ctx, order.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = f.store.OrderItems.GetByID(f.ctx, oi.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	requests, err := f.store.VipRequests.FindByCustomer(f.ctx, f.customer.ID)
	require.NoError(t, err)
	assert.Empty(t, requests)
}

func TestDeletingStaffKeepsOrders(t *testing.T) {
	f := newFixture(t)
	order := f.order(t)

	require.NoError(t, f.store.Staff.Delete(f.ctx, f.staff.ID))

	kept, err := f.store.Orders.GetByID(f.ctx, order.ID)
	require.NoError(t, err)
	assert.Nil(t, kept.StaffID)
}

func TestScheduleFilter(t *testing.T) {
	f := newFixture(t)
	slots := []model.StaffSchedule{
		{StaffID: f.staff.ID, WorkDay: model.Monday, WorkShift: model.ShiftMorning},
		{StaffID: f.staff.ID, WorkDay: model.Monday, WorkShift: model.ShiftEvening},
		{StaffID: f.staff.ID, WorkDay: model.Friday, WorkShift: model.ShiftEvening},
	}
	for i := range slots {
		require.NoError(t, f.store.StaffSchedules.Create(f.ctx, &slots[i]))
	}

	day, shift := model.Monday, model.ShiftEvening
	both, err := f.store.StaffSchedules.Find(f.ctx, repository.ScheduleFilter{Day: &day, Shift: &shift})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, slots[1].ID, both[0].ID)

	byStaff, err := f.store.StaffSchedules.Find(f.ctx, repository.ScheduleFilter{StaffID: &f.staff.ID})
	require.NoError(t, err)
	assert.Len(t, byStaff, 3)

	_, err = f.store.StaffSchedules.FindSlot(f.ctx, f.staff.ID, model.Sunday, model.ShiftNight)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestReservationsByDay(t *testing.T) {
	f := newFixture(t)
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	for _, at := range []time.Time{day.Add(19 * time.Hour), day.Add(30 * time.Hour)} {
		require.NoError(t, f.store.Reservations.Create(f.ctx, &model.Reservation{
			CustomerID: f.customer.ID, TableID: f.table.ID, ReservationDate: at,
			DurationHours: 2, NumberOfGuests: 2, Status: model.ReservationPending,
		}))
	}

	found, err := f.store.Reservations.FindByDay(f.ctx, day.Add(5*time.Hour))
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestTransactionRollsBack(t *testing.T) {
	f := newFixture(t)

	err := f.store.Transaction(f.ctx, func(tx *repository.Store) error {
		if _, err := tx.Tables.SetOccupied(f.ctx, f.table.ID, true); err != nil {
			return err
		}
		return tx.Customers.UpdateRole(f.ctx, 999, model.CustomerVIP)
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	table, err := f.store.Tables.GetByID(f.ctx, f.table.ID)
	require.NoError(t, err)
	assert.False(t, table.IsOccupied)
}
