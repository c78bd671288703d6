package service_test

import (
	"testing"
	"time"

	"restaurant/model"
	"restaurant/repository"
	"restaurant/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationRules(t *testing.T) {
	e := newEnv(t)
	customer := e.customer(t, "abby")
	small := e.table(t, "T01", 2)
	large := e.table(t, "T02", 8)
	when := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)

	_, err := e.reservations.Create(e.ctx, service.CreateReservationInput{
		CustomerID: customer.ID, TableID: small.ID, ReservationDate: when, NumberOfGuests: 5,
	})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	reservation, err := e.reservations.Create(e.ctx, service.CreateReservationInput{
		CustomerID: customer.ID, TableID: large.ID, ReservationDate: when, NumberOfGuests: 5, SpecialRequests: "birthday",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, reservation.DurationHours)
	assert.Equal(t, model.ReservationPending, reservation.Status)

	_, err = e.reservations.Update(e.ctx, reservation.ID, service.UpdateReservationInput{TableID: &small.ID})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	updated, err := e.reservations.Update(e.ctx, reservation.ID, service.UpdateReservationInput{Status: ptr(model.ReservationConfirmed)})
	require.NoError(t, err)
	assert.Equal(t, model.ReservationConfirmed, updated.Status)
	assert.Equal(t, "birthday", updated.SpecialRequests)
	assert.Equal(t, large.ID, updated.TableID)

	onDay, err := e.reservations.FindByDay(e.ctx, when)
	require.NoError(t, err)
	assert.Len(t, onDay, 1)

	atLarge, err := e.reservations.FindByTable(e.ctx, large.ID)
	require.NoError(t, err)
	assert.Len(t, atLarge, 1)
	atSmall, err := e.reservations.FindByTable(e.ctx, small.ID)
	require.NoError(t, err)
	assert.Empty(t, atSmall)

	_, err = e.reservations.Create(e.ctx, service.CreateReservationInput{
		CustomerID: 999, TableID: large.ID, ReservationDate: when, NumberOfGuests: 1,
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestReviewRules(t *testing.T) {
	e := newEnv(t)
	owner := e.customer(t, "beth")
	stranger := e.customer(t, "carl")
	order := e.order(t, owner.ID, e.table(t, "T01", 2).ID)

	_, err := e.reviews.Create(e.ctx, service.CreateReviewInput{CustomerID: owner.ID, OrderID: order.ID, Rating: 6})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	_, err = e.reviews.Create(e.ctx, service.CreateReviewInput{CustomerID: stranger.ID, OrderID: order.ID, Rating: 4})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	_, err = e.reviews.Create(e.ctx, service.CreateReviewInput{CustomerID: owner.ID, OrderID: 999, Rating: 4})
	assert.ErrorIs(t, err, service.ErrNotFound)

	review, err := e.reviews.Create(e.ctx, service.CreateReviewInput{CustomerID: owner.ID, OrderID: order.ID, Rating: 4, Comment: "good"})
	require.NoError(t, err)

	updated, err := e.reviews.Update(e.ctx, review.ID, service.UpdateReviewInput{Rating: ptr(5)})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
	assert.Equal(t, "good", updated.Comment)

	fives, err := e.reviews.FindByRating(e.ctx, 5)
	require.NoError(t, err)
	assert.Len(t, fives, 1)
}

func TestScheduleSlotsAreUnique(t *testing.T) {
	e := newEnv(t)
	member, err := e.staff.Create(e.ctx, service.CreateStaffInput{
		Username: "dora", Password: "secret123", FullName: "Dora", Email: "dora@example.com", Role: model.StaffWaiter,
	})
	require.NoError(t, err)

	monday, err := e.schedules.Create(e.ctx, service.CreateScheduleInput{StaffID: member.ID, WorkDay: model.Monday, WorkShift: model.ShiftMorning})
	require.NoError(t, err)
	_, err = e.schedules.Create(e.ctx, service.CreateScheduleInput{StaffID: member.ID, WorkDay: model.Monday, WorkShift: model.ShiftMorning})
	assert.ErrorIs(t, err, service.ErrConflict)

	tuesday, err := e.schedules.Create(e.ctx, service.CreateScheduleInput{StaffID: member.ID, WorkDay: model.Tuesday, WorkShift: model.ShiftNight})
	require.NoError(t, err)
	_, err = e.schedules.Update(e.ctx, tuesday.ID, service.UpdateScheduleInput{WorkDay: ptr(model.Monday), WorkShift: ptr(model.ShiftMorning)})
	assert.ErrorIs(t, err, service.ErrConflict)

	_, err = e.schedules.Update(e.ctx, monday.ID, service.UpdateScheduleInput{WorkShift: ptr(model.ShiftMorning)})
	assert.NoError(t, err)

	_, err = e.schedules.Create(e.ctx, service.CreateScheduleInput{StaffID: member.ID, WorkDay: "someday", WorkShift: model.ShiftMorning})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	_, err = e.schedules.Create(e.ctx, service.CreateScheduleInput{StaffID: 999, WorkDay: model.Friday, WorkShift: model.ShiftMorning})
	assert.ErrorIs(t, err, service.ErrNotFound)

	night := model.ShiftNight
	found, err := e.schedules.Find(e.ctx, repository.ScheduleFilter{StaffID: &member.ID, Shift: &night})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, tuesday.ID, found[0].ID)
}
