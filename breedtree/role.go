package breedtree

import (
	"fmt"

	"github.com/katalvlaran/breedplan/pokemon"
)

// Role is the abstract job of a donor at a leaf. RoleA..RoleE stand for "a
// donor carrying exactly this one perfect IV" and are resolved through an
// Assignment. RoleNature stands for "a donor carrying only the nature" and
// never resolves to an IV.
type Role uint8

const (
	RoleA Role = iota
	RoleB
	RoleC
	RoleD
	RoleE
	RoleNature
)

// LetteredRoles lists the IV-carrying roles in order.
var LetteredRoles = []Role{RoleA, RoleB, RoleC, RoleD, RoleE}

var roleNames = [...]string{"A", "B", "C", "D", "E", "Nature"}

// IsNature reports whether r is the nature-only role.
func (r Role) IsNature() bool { return r == RoleNature }

// IsLettered reports whether r is one of RoleA..RoleE.
func (r Role) IsLettered() bool { return r <= RoleE }

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return fmt.Sprintf("Role(%d)", uint8(r))
}

// Assignment resolves lettered roles to the IVs they stand for.
type Assignment map[Role]pokemon.IV

// AssignInOrder maps RoleA to ivs[0], RoleB to ivs[1] and so on. IVs beyond
// RoleE are ignored; Build will then report the mismatch.
func AssignInOrder(ivs []pokemon.IV) Assignment {
	a := make(Assignment, len(ivs))
	for i, iv := range ivs {
		if i >= len(LetteredRoles) {
			break
		}
		a[LetteredRoles[i]] = iv
	}

	return a
}
