package constants

import "fmt"

const (
	RoleUser        = "user"
	RoleContributor = "contributor"
	RoleAdmin       = "admin"
)

// Template pesan error role
const (
	ErrOnlyContributorsCanAccess = "❌ Hanya contributor atau admin yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess       = "❌ Hanya admin yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorContributor(feature string) string {
	return fmt.Sprintf(ErrOnlyContributorsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleContributor,
		RoleAdmin,
	}

	ContributorAndAbove = []string{
		RoleContributor,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

// ValidRole cek apakah string role dikenal
func ValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
