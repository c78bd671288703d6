package model

type StaffSchedule struct {
	Base
	StaffID   uint      `json:"staff_id" gorm:"not null;uniqueIndex:idx_staff_schedules_slot"`
	WorkDay   WorkDay   `json:"work_day" gorm:"type:varchar(3);not null;uniqueIndex:idx_staff_schedules_slot;check:work_day IN ('mon','tue','wed','thu','fri','sat','sun')"`
	WorkShift WorkShift `json:"work_shift" gorm:"type:varchar(10);not null;uniqueIndex:idx_staff_schedules_slot;check:work_shift IN ('morning','afternoon','evening','night')"`
}
