package constants

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// User role
const (
	RoleGuest          = 0
	RoleSuperAdmin     = 1
	RoleFranchiseOwner = 2
	RoleHotelAdmin     = 3
	RoleStaff          = 4
)

// Stay status
const (
	StayStatusBooked     = "Booked"
	StayStatusCheckedIn  = "Checked In"
	StayStatusCheckedOut = "Checked Out"
	StayStatusMaster     = "Master"
)

// Room display status
const (
	RoomDisplayAvailable  = "Available"
	RoomDisplayOccupied   = "Occupied"
	RoomDisplayCleaning   = "Cleaning"
	RoomDisplayWaiting    = "Waiting for Check-in"
	RoomDisplayReserved   = "Reserved"
	RoomDisplayOutOfOrder = "Out of Order"
)

// Service request status
const (
	RequestStatusPending    = "Pending"
	RequestStatusInProgress = "In Progress"
	RequestStatusCompleted  = "Completed"
)

// Billed order status
const (
	BilledOrderPending = "Pending"
	BilledOrderPaid    = "Paid"
)
