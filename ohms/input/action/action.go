package action

// Action represents input actions that can be performed on the component
type Action int

const (
	// Band interaction
	BandTap    Action = iota // cycle the band at a slot
	BandHold                 // long press, opens the slot menu
	BandChoose               // pick an entry from the slot menu

	// Standard value navigation
	SwipeLeft  // right-to-left drag, next larger standard value
	SwipeRight // left-to-right drag, next smaller standard value

	// Mode switches
	ToggleBandCount
	SwitchComponent

	// App controls
	AppQuit
	LogLevelIncrease
	LogLevelDecrease
)

// Category groups actions by how backends and the input manager treat them
type Category int

const (
	CategoryBand Category = iota
	CategoryNavigation
	CategoryMode
	CategoryApp
)

// Info describes an action
type Info struct {
	Description string
	Category    Category
}

var infos = map[Action]Info{
	BandTap:          {"Tap band", CategoryBand},
	BandHold:         {"Open band menu", CategoryBand},
	BandChoose:       {"Choose band value", CategoryBand},
	SwipeLeft:        {"Next standard value", CategoryNavigation},
	SwipeRight:       {"Previous standard value", CategoryNavigation},
	ToggleBandCount:  {"Toggle 5/6 bands", CategoryMode},
	SwitchComponent:  {"Switch resistor/capacitor", CategoryMode},
	AppQuit:          {"Quit", CategoryApp},
	LogLevelIncrease: {"More verbose logs", CategoryApp},
	LogLevelDecrease: {"Less verbose logs", CategoryApp},
}

// GetInfo returns the description and category of an action
func GetInfo(act Action) Info {
	if info, ok := infos[act]; ok {
		return info
	}
	return Info{Description: "Unknown", Category: CategoryApp}
}

func (a Action) String() string {
	return GetInfo(a).Description
}
