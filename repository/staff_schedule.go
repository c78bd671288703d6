package repository

import (
	"context"

	"restaurant/model"

	"gorm.io/gorm"
)

// ScheduleFilter narrows schedule lookups; nil fields are ignored.
type ScheduleFilter struct {
	StaffID *uint
	Day     *model.WorkDay
	Shift   *model.WorkShift
}

type StaffScheduleRepository interface {
	CRUD[model.StaffSchedule]
	Find(ctx context.Context, filter ScheduleFilter) ([]model.StaffSchedule, error)
	FindSlot(ctx context.Context, staffID uint, day model.WorkDay, shift model.WorkShift) (*model.StaffSchedule, error)
}

type staffScheduleRepository struct {
	crud[model.StaffSchedule]
}

func NewStaffScheduleRepository(db *gorm.DB) StaffScheduleRepository {
	return &staffScheduleRepository{crud[model.StaffSchedule]{db: db}}
}

func (r *staffScheduleRepository) Find(ctx context.Context, filter ScheduleFilter) ([]model.StaffSchedule, error) {
	q := r.conn(ctx)
	if filter.StaffID != nil {
		q = q.Where("staff_id = ?", *filter.StaffID)
	}
	if filter.Day != nil {
		q = q.Where("work_day = ?", *filter.Day)
	}
	if filter.Shift != nil {
		q = q.Where("work_shift = ?", *filter.Shift)
	}
	var rows []model.StaffSchedule
	err := q.Order("id").Find(&rows).Error
	return rows, err
}

func (r *staffScheduleRepository) FindSlot(ctx context.Context, staffID uint, day model.WorkDay, shift model.WorkShift) (*model.StaffSchedule, error) {
	return r.first(ctx, "staff_id = ? AND work_day = ? AND work_shift = ?", staffID, day, shift)
}
