package service_test

import (
	"bytes"
	"testing"

	"restaurant/model"
	"restaurant/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestTableValidation(t *testing.T) {
	e := newEnv(t)
	table := e.table(t, "T01", 4)

	_, err := e.tables.Create(e.ctx, service.CreateTableInput{Number: "T01", Size: 2})
	assert.ErrorIs(t, err, service.ErrConflict)
	_, err = e.tables.Create(e.ctx, service.CreateTableInput{Number: "table-1", Size: 2})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	_, err = e.tables.Create(e.ctx, service.CreateTableInput{Number: "T09", Size: 0})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	updated, err := e.tables.Update(e.ctx, table.ID, service.UpdateTableInput{Size: ptr(6)})
	require.NoError(t, err)
	assert.Equal(t, 6, updated.Size)
	assert.Equal(t, "T01", updated.Number)

	e.table(t, "T02", 6)
	_, err = e.tables.SetOccupied(e.ctx, table.ID, true)
	require.NoError(t, err)
	available, err := e.tables.FindAvailableBySize(e.ctx, 6)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "T02", available[0].Number)

	_, err = e.tables.SetOccupied(e.ctx, 999, false)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestMenuItemRules(t *testing.T) {
	e := newEnv(t)

	zero := dec("0")
	_, err := e.menu.Create(e.ctx, service.CreateMenuItemInput{Name: "Air", Type: model.ItemFood, Price: &zero})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	price := dec("4.00")
	_, err = e.menu.Create(e.ctx, service.CreateMenuItemInput{Name: "Mystery", Type: "snack", Price: &price})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	item := e.menuItem(t, "Pie", "6.75")
	assert.True(t, item.IsAvailable)

	order := e.order(t, e.customer(t, "yuri").ID, e.table(t, "T01", 2).ID)
	_, err = e.orderItems.Add(e.ctx, service.AddOrderItemInput{OrderID: order.ID, MenuItemID: item.ID, Quantity: 1})
	require.NoError(t, err)
	assert.ErrorIs(t, e.menu.Delete(e.ctx, item.ID), service.ErrConflict)

	unused := e.menuItem(t, "Cake", "5.00")
	require.NoError(t, e.menu.Delete(e.ctx, unused.ID))
	assert.ErrorIs(t, e.menu.Delete(e.ctx, unused.ID), service.ErrNotFound)
}

func TestMenuImportFromWorkbook(t *testing.T) {
	e := newEnv(t)

	xl := excelize.NewFile()
	rows := [][]any{
		{"name", "type", "price", "description", "available"},
		{"Lemonade", "drink", "3.50", "fresh", "true"},
		{"Brownie", "Dessert", "4.25", "", "false"},
		{"", "food", "9.00"},
		{"Mystery", "snack", "2.00"},
		{"Fries", "appetizer", "abc"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, xl.SetSheetRow("Sheet1", cell, &row))
	}
	var buf bytes.Buffer
	_, err := xl.WriteTo(&buf)
	require.NoError(t, err)

	result, err := e.menu.Import(e.ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	require.Len(t, result.Skipped, 3)
	assert.Equal(t, 4, result.Skipped[0].Row)

	drinks, err := e.menu.FindByType(e.ctx, model.ItemDrink)
	require.NoError(t, err)
	require.Len(t, drinks, 1)
	requireDecimal(t, "3.50", drinks[0].Price)

	available, err := e.menu.FindAvailable(e.ctx)
	require.NoError(t, err)
	assert.Len(t, available, 1)

	_, err = e.menu.Import(e.ctx, bytes.NewReader([]byte("not a workbook")))
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestSalesReport(t *testing.T) {
	e := newEnv(t)
	order := e.order(t, e.customer(t, "zoe").ID, e.table(t, "T01", 2).ID)
	item := e.menuItem(t, "Pasta", "14.00")
	_, err := e.orderItems.Add(e.ctx, service.AddOrderItemInput{OrderID: order.ID, MenuItemID: item.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = e.orders.Update(e.ctx, order.ID, service.UpdateOrderInput{Status: ptr(model.OrderPaid)})
	require.NoError(t, err)
	e.order(t, order.CustomerID, order.TableID)

	var buf bytes.Buffer
	require.NoError(t, e.reports.WriteSalesReport(e.ctx, &buf))

	xl, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	rows, err := xl.GetRows("Sales")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Order ID", rows[0][0])
	assert.Equal(t, "28", rows[1][7])
	assert.Equal(t, "Total", rows[2][0])
	assert.Equal(t, "28", rows[2][7])
}
