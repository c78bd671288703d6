package model

type CustomerRole string

const (
	CustomerRegular CustomerRole = "regular"
	CustomerVIP     CustomerRole = "vip"
)

func (r CustomerRole) Valid() bool {
	return r == CustomerRegular || r == CustomerVIP
}

type StaffRole string

const (
	StaffWaiter  StaffRole = "waiter"
	StaffChef    StaffRole = "chef"
	StaffCashier StaffRole = "cashier"
	StaffAdmin   StaffRole = "admin"
)

func (r StaffRole) Valid() bool {
	switch r {
	case StaffWaiter, StaffChef, StaffCashier, StaffAdmin:
		return true
	}
	return false
}

type ItemType string

const (
	ItemFood      ItemType = "food"
	ItemDrink     ItemType = "drink"
	ItemAppetizer ItemType = "appetizer"
	ItemDessert   ItemType = "dessert"
)

func (t ItemType) Valid() bool {
	switch t {
	case ItemFood, ItemDrink, ItemAppetizer, ItemDessert:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderServed    OrderStatus = "served"
	OrderPaid      OrderStatus = "paid"
	OrderCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderPreparing, OrderReady, OrderServed, OrderPaid, OrderCancelled:
		return true
	}
	return false
}

// PaymentMethod is shared by orders and payments.
type PaymentMethod string

const (
	PaymentCash          PaymentMethod = "cash"
	PaymentCard          PaymentMethod = "card"
	PaymentDigitalWallet PaymentMethod = "digital_wallet"
	PaymentBankTransfer  PaymentMethod = "bank_transfer"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentDigitalWallet, PaymentBankTransfer:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCancelled, ReservationCompleted:
		return true
	}
	return false
}

type WorkDay string

const (
	Monday    WorkDay = "mon"
	Tuesday   WorkDay = "tue"
	Wednesday WorkDay = "wed"
	Thursday  WorkDay = "thu"
	Friday    WorkDay = "fri"
	Saturday  WorkDay = "sat"
	Sunday    WorkDay = "sun"
)

func (d WorkDay) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

type WorkShift string

const (
	ShiftMorning   WorkShift = "morning"
	ShiftAfternoon WorkShift = "afternoon"
	ShiftEvening   WorkShift = "evening"
	ShiftNight     WorkShift = "night"
)

func (s WorkShift) Valid() bool {
	switch s {
	case ShiftMorning, ShiftAfternoon, ShiftEvening, ShiftNight:
		return true
	}
	return false
}

type VipRequestStatus string

const (
	VipPending  VipRequestStatus = "pending"
	VipApproved VipRequestStatus = "approved"
	VipRejected VipRequestStatus = "rejected"
)

func (s VipRequestStatus) Valid() bool {
	return s == VipPending || s == VipApproved || s == VipRejected
}

// AccountKind tells staff and customer accounts apart inside tokens.
type AccountKind string

const (
	AccountStaff    AccountKind = "staff"
	AccountCustomer AccountKind = "customer"
)
