package service_test

import (
	"context"
	"testing"
	"time"

	"restaurant/auth"
	"restaurant/config"
	"restaurant/database/dbtest"
	"restaurant/events"
	"restaurant/logger"
	"restaurant/model"
	"restaurant/repository"
	"restaurant/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type env struct {
	ctx    context.Context
	store  *repository.Store
	events *events.Recorder
	issuer *auth.TokenIssuer

	customers    *service.CustomerService
	staff        *service.StaffService
	tables       *service.TableService
	menu         *service.MenuItemService
	orders       *service.OrderService
	orderItems   *service.OrderItemService
	payments     *service.PaymentService
	reservations *service.ReservationService
	reviews      *service.ReviewService
	schedules    *service.StaffScheduleService
	vip          *service.VipRequestService
	auth         *service.AuthService
	reports      *service.ReportService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := repository.NewStore(dbtest.New(t))
	recorder := &events.Recorder{}
	log := logger.Discard()
	issuer := auth.NewTokenIssuer(config.Auth{Secret: "test", AccessTTL: time.Minute, RefreshTTL: time.Hour})

	return &env{
		ctx:          context.Background(),
		store:        store,
		events:       recorder,
		issuer:       issuer,
		customers:    service.NewCustomerService(store.Customers, log),
		staff:        service.NewStaffService(store.Staff, log),
		tables:       service.NewTableService(store.Tables, log),
		menu:         service.NewMenuItemService(store.MenuItems, store.OrderItems, log),
		orders:       service.NewOrderService(store, recorder, log),
		orderItems:   service.NewOrderItemService(store, log),
		payments:     service.NewPaymentService(store, recorder, log),
		reservations: service.NewReservationService(store, log),
		reviews:      service.NewReviewService(store, log),
		schedules:    service.NewStaffScheduleService(store, log),
		vip:          service.NewVipRequestService(store, recorder, log),
		auth:         service.NewAuthService(store, issuer, log),
		reports:      service.NewReportService(store.Orders, log),
	}
}

func (e *env) customer(t *testing.T, username string) *model.Customer {
	t.Helper()
	c, err := e.customers.Create(e.ctx, service.CreateCustomerInput{
		Username: username,
		Password: "secret123",
		FullName: "Customer " + username,
		Email:    username + "@example.com",
	})
	require.NoError(t, err)
	return c
}

func (e *env) table(t *testing.T, number string, size int) *model.Table {
	t.Helper()
	table, err := e.tables.Create(e.ctx, service.CreateTableInput{Number: number, Size: size})
	require.NoError(t, err)
	return table
}

func (e *env) menuItem(t *testing.T, name, price string) *model.MenuItem {
	t.Helper()
	p := dec(price)
	item, err := e.menu.Create(e.ctx, service.CreateMenuItemInput{Name: name, Type: model.ItemFood, Price: &p})
	require.NoError(t, err)
	return item
}

func (e *env) order(t *testing.T, customerID, tableID uint) *model.Order {
	t.Helper()
	order, err := e.orders.Create(e.ctx, service.CreateOrderInput{CustomerID: customerID, TableID: tableID})
	require.NoError(t, err)
	return order
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T {
	return &v
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, dec(want).Equal(got), "want %s, got %s", want, got)
}
