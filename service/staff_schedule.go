package service

import (
	"context"
	"errors"

	"restaurant/logger"
	"restaurant/model"
	"restaurant/repository"
)

type CreateScheduleInput struct {
	StaffID   uint            `json:"staff_id" binding:"required"`
	WorkDay   model.WorkDay   `json:"work_day" binding:"required"`
	WorkShift model.WorkShift `json:"work_shift" binding:"required"`
}

type UpdateScheduleInput struct {
	StaffID   *uint            `json:"staff_id"`
	WorkDay   *model.WorkDay   `json:"work_day"`
	WorkShift *model.WorkShift `json:"work_shift"`
}

type StaffScheduleService struct {
	schedules repository.StaffScheduleRepository
	staff     repository.StaffRepository
	log       *logger.Logger
}

func NewStaffScheduleService(store *repository.Store, log *logger.Logger) *StaffScheduleService {
	return &StaffScheduleService{
		schedules: store.StaffSchedules,
		staff:     store.Staff,
		log:       log.WithComponent("staff_schedule_service"),
	}
}

// checkSlot validates a (staff, day, shift) slot and rejects it if another entry holds it.
func (s *StaffScheduleService) checkSlot(ctx context.Context, staffID uint, day model.WorkDay, shift model.WorkShift, selfID uint) error {
	if !day.Valid() {
		return invalid("unknown work day %q", day)
	}
	if !shift.Valid() {
		return invalid("unknown work shift %q", shift)
	}
	if _, err := s.staff.GetByID(ctx, staffID); err != nil {
		return storeErr(err, "staff", staffID)
	}
	existing, err := s.schedules.FindSlot(ctx, staffID, day, shift)
	switch {
	case err == nil && existing.ID != selfID:
		return conflict("staff %d is already scheduled on %s %s", staffID, day, shift)
	case err != nil && !errors.Is(err, repository.ErrNotFound):
		return err
	}
	return nil
}

func (s *StaffScheduleService) Create(ctx context.Context, in CreateScheduleInput) (*model.StaffSchedule, error) {
	if err := s.checkSlot(ctx, in.StaffID, in.WorkDay, in.WorkShift, 0); err != nil {
		return nil, err
	}
	schedule := &model.StaffSchedule{StaffID: in.StaffID, WorkDay: in.WorkDay, WorkShift: in.WorkShift}
	if err := s.schedules.Create(ctx, schedule); err != nil {
		return nil, storeErr(err, "staff schedule", 0)
	}
	return schedule, nil
}

func (s *StaffScheduleService) Get(ctx context.Context, id uint) (*model.StaffSchedule, error) {
	schedule, err := s.schedules.GetByID(ctx, id)
	return schedule, storeErr(err, "staff schedule", id)
}

func (s *StaffScheduleService) List(ctx context.Context, skip, limit int) ([]model.StaffSchedule, error) {
	return s.schedules.List(ctx, skip, limit)
}

func (s *StaffScheduleService) Update(ctx context.Context, id uint, in UpdateScheduleInput) (*model.StaffSchedule, error) {
	schedule, err := s.schedules.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "staff schedule", id)
	}
	if in.StaffID != nil {
		schedule.StaffID = *in.StaffID
	}
	if in.WorkDay != nil {
		schedule.WorkDay = *in.WorkDay
	}
	if in.WorkShift != nil {
		schedule.WorkShift = *in.WorkShift
	}
	if err := s.checkSlot(ctx, schedule.StaffID, schedule.WorkDay, schedule.WorkShift, id); err != nil {
		return nil, err
	}
	if err := s.schedules.Update(ctx, schedule); err != nil {
		return nil, storeErr(err, "staff schedule", id)
	}
	return schedule, nil
}

func (s *StaffScheduleService) Delete(ctx context.Context, id uint) error {
	return storeErr(s.schedules.Delete(ctx, id), "staff schedule", id)
}

// Find filters schedules by any combination of staff, day and shift.
func (s *StaffScheduleService) Find(ctx context.Context, filter repository.ScheduleFilter) ([]model.StaffSchedule, error) {
	if filter.Day != nil && !filter.Day.Valid() {
		return nil, invalid("unknown work day %q", *filter.Day)
	}
	if filter.Shift != nil && !filter.Shift.Valid() {
		return nil, invalid("unknown work shift %q", *filter.Shift)
	}
	return s.schedules.Find(ctx, filter)
}
