package timetable

// Weekly role patterns per round: six slots read cyclically. Round 4 carries
// no Foreign slots at all.
var (
	standardPattern = [6]Role{RoleHomeroom, RoleKorean, RoleForeign, RoleHomeroom, RoleKorean, RoleForeign}
	round4Pattern   = [6]Role{RoleHomeroom, RoleKorean, RoleHomeroom, RoleHomeroom, RoleKorean, RoleHomeroom}
)

func roundPattern(round int) [6]Role {
	if round == MaxRound {
		return round4Pattern
	}
	return standardPattern
}

// staggerCapacity is the size of the limiting pool for a round: the foreign
// pool for rounds 1-3, the homeroom pool for round 4. Clamped to 1 so an
// empty pool degrades to no stagger instead of a zero modulus.
func staggerCapacity(cfg *SlotConfig, round int) int {
	capacity := len(cfg.ForeignPool)
	if round == MaxRound {
		capacity = len(cfg.HomeroomPool)
	}
	if capacity < 1 {
		capacity = 1
	}
	return capacity
}

// staggerRoles computes which two roles fill the round's two periods for the
// class at index classIdx on the day at index dayIdx. The phase shifts with
// both indices modulo the pool capacity, so the same role does not land on
// the same weekday for every class.
func staggerRoles(round, dayIdx, classIdx, capacity int) (Role, Role) {
	phase := (dayIdx + classIdx) % capacity
	base := (dayIdx*2 + phase) % 6
	pattern := roundPattern(round)
	return pattern[base], pattern[(base+1)%6]
}
