package resistor

// SlotCount is the number of physical band positions on the drawn body.
const SlotCount = 6

// Role is the logical meaning of a physical band slot.
type Role int

const (
	RoleNone Role = iota
	RoleDigit1
	RoleDigit2
	RoleDigit3
	RoleMultiplier
	RoleTolerance
	RoleTempCoef
)

var roleNames = map[Role]string{
	RoleNone:       "none",
	RoleDigit1:     "digit 1",
	RoleDigit2:     "digit 2",
	RoleDigit3:     "digit 3",
	RoleMultiplier: "multiplier",
	RoleTolerance:  "tolerance",
	RoleTempCoef:   "temp coef",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// Layout maps physical slots to roles.
type Layout [SlotCount]Role

var (
	fourBandLayout = Layout{RoleDigit1, RoleDigit2, RoleMultiplier, RoleNone, RoleNone, RoleTolerance}
	fiveBandLayout = Layout{RoleDigit1, RoleDigit2, RoleDigit3, RoleMultiplier, RoleNone, RoleTolerance}
	sixBandLayout  = Layout{RoleDigit1, RoleDigit2, RoleDigit3, RoleMultiplier, RoleTolerance, RoleTempCoef}
)

// layoutFor picks the layout for a mode. The tolerance always sits on the
// last slot unless a temperature coefficient takes it.
func layoutFor(fourDigit, sixBand bool) Layout {
	switch {
	case fourDigit && sixBand:
		return sixBandLayout
	case fourDigit:
		return fiveBandLayout
	default:
		return fourBandLayout
	}
}

// RoleAt returns the role drawn at slot, RoleNone for hidden or invalid slots.
func (l Layout) RoleAt(slot int) Role {
	if slot < 0 || slot >= SlotCount {
		return RoleNone
	}
	return l[slot]
}

// SlotOf returns the slot a role is drawn at.
func (l Layout) SlotOf(role Role) (int, bool) {
	if role == RoleNone {
		return -1, false
	}
	for i, r := range l {
		if r == role {
			return i, true
		}
	}
	return -1, false
}

// BandCount returns the number of visible bands.
func (l Layout) BandCount() int {
	n := 0
	for _, r := range l {
		if r != RoleNone {
			n++
		}
	}
	return n
}
