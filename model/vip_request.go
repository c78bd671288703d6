package model

type VipRequest struct {
	Base
	CustomerID uint             `json:"customer_id" gorm:"not null;index"`
	Status     VipRequestStatus `json:"status" gorm:"type:varchar(10);not null;index;check:status IN ('pending','approved','rejected')"`
	Reason     string           `json:"reason,omitempty" gorm:"size:255"`
}
