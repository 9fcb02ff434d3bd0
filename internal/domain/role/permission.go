package role

type Permission string

const (
	ReadServices   Permission = "read_services"
	WriteServices  Permission = "write_services"
	DeleteServices Permission = "delete_services"
	ReadBookings   Permission = "read_bookings"
	WriteBookings  Permission = "write_bookings"
	DeleteBookings Permission = "delete_bookings"
	ReadUsers      Permission = "read_users"
	WriteUsers     Permission = "write_users"
	DeleteUsers    Permission = "delete_users"
	AdminDashboard Permission = "admin_dashboard"
	SystemSettings Permission = "system_settings"
)

var permissions = map[Role][]Permission{
	Customer: {
		ReadServices,
	},
	Admin: {
		ReadServices,
		WriteServices,
		DeleteServices,
		ReadBookings,
		WriteBookings,
		DeleteBookings,
		AdminDashboard,
	},
	SuperAdmin: {
		ReadServices,
		WriteServices,
		DeleteServices,
		ReadBookings,
		WriteBookings,
		DeleteBookings,
		ReadUsers,
		WriteUsers,
		DeleteUsers,
		AdminDashboard,
		SystemSettings,
	},
}

// PermissionsOf returns a fresh copy of the role's permission set.
func PermissionsOf(r Role) map[Permission]struct{} {
	set := make(map[Permission]struct{}, len(permissions[r]))
	for _, p := range permissions[r] {
		set[p] = struct{}{}
	}
	return set
}

func Has(r Role, p Permission) bool {
	for _, granted := range permissions[r] {
		if granted == p {
			return true
		}
	}
	return false
}
