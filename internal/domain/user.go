package domain

// User roles recognized by the backend.
const (
	RoleAttendee  = "attendee"
	RoleOrganizer = "organizer"
	RoleVendor    = "vendor"
	RoleStaff     = "staff"
	RoleAdmin     = "admin"
)

// User is the authenticated account as the backend reports it.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
