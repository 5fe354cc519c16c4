// Package authz is the single authorization gate for the platform: one table
// mapping operations to the roles allowed to perform them, consulted before
// every ledger, catalog, and roster mutation.
package authz

import "github.com/asadbek201001/Ilmhub-Coin-system/internal/core/domain"

// Operation names a guarded action.
type Operation string

const (
	OpGrantCoins      Operation = "grant_coins"
	OpPurchaseItem    Operation = "purchase_item"
	OpAddItem         Operation = "add_item"
	OpSetAvailability Operation = "set_availability"
	OpAddStudent      Operation = "add_student"
	OpAddTeacher      Operation = "add_teacher"
	OpListStudents    Operation = "list_students"
)

var allowed = map[Operation][]domain.Role{
	OpGrantCoins:      {domain.RoleTeacher},
	OpPurchaseItem:    {domain.RoleStudent},
	OpAddItem:         {domain.RoleAdmin},
	OpSetAvailability: {domain.RoleAdmin},
	OpAddStudent:      {domain.RoleTeacher},
	OpAddTeacher:      {domain.RoleAdmin},
	OpListStudents:    {domain.RoleTeacher, domain.RoleAdmin},
}

// CanPerform reports whether the role may invoke the operation. Unknown roles
// and unknown operations are always denied.
func CanPerform(role domain.Role, op Operation) bool {
	for _, r := range allowed[op] {
		if r == role {
			return true
		}
	}
	return false
}
