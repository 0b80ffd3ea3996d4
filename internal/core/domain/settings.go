package domain

const unknownDescription = "Unknown"

// ThemeColor selects the interface accent colour.
type ThemeColor string

// Available theme colours.
const (
	ThemeIndigo  ThemeColor = "indigo"
	ThemeEmerald ThemeColor = "emerald"
	ThemeRose    ThemeColor = "rose"
)

// IsValid returns true if the theme colour is recognised.
func (c ThemeColor) IsValid() bool {
	switch c {
	case ThemeIndigo, ThemeEmerald, ThemeRose:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c ThemeColor) String() string {
	return string(c)
}

// Description returns a human-readable description of the colour.
func (c ThemeColor) Description() string {
	switch c {
	case ThemeIndigo:
		return "Indigo (default)"
	case ThemeEmerald:
		return "Emerald"
	case ThemeRose:
		return "Rose"
	default:
		return unknownDescription
	}
}

// DetailLevel controls how exhaustive generated analyses should be.
type DetailLevel string

// Available detail levels.
const (
	DetailConcise  DetailLevel = "concise"
	DetailDetailed DetailLevel = "detailed"
)

// IsValid returns true if the detail level is recognised.
func (l DetailLevel) IsValid() bool {
	switch l {
	case DetailConcise, DetailDetailed:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (l DetailLevel) String() string {
	return string(l)
}

// Description returns a human-readable description of the level.
func (l DetailLevel) Description() string {
	switch l {
	case DetailConcise:
		return "Concise (key points only)"
	case DetailDetailed:
		return "Detailed (full explanations)"
	default:
		return unknownDescription
	}
}

// Settings is the singleton user preference record. It is created
// lazily with defaults on first read and overwritten wholesale on
// save; it is independent of folders and documents.
type Settings struct {
	// UserName is the display name used in greetings.
	UserName string `json:"userName"`

	// ThemeColor is the interface accent colour.
	ThemeColor ThemeColor `json:"themeColor"`

	// DetailLevel is the preferred analysis depth.
	DetailLevel DetailLevel `json:"detailLevel"`
}

// DefaultSettings returns settings with sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		UserName:    "Student",
		ThemeColor:  ThemeIndigo,
		DetailLevel: DetailDetailed,
	}
}

// Normalized returns a copy with any invalid field replaced by its
// default. Used on read and on import so garbage values stored by an
// older release or a foreign snapshot degrade instead of propagating.
func (s Settings) Normalized() Settings {
	defaults := DefaultSettings()
	if s.UserName == "" {
		s.UserName = defaults.UserName
	}
	if !s.ThemeColor.IsValid() {
		s.ThemeColor = defaults.ThemeColor
	}
	if !s.DetailLevel.IsValid() {
		s.DetailLevel = defaults.DetailLevel
	}
	return s
}

// AllThemeColors returns all available theme colours.
func AllThemeColors() []ThemeColor {
	return []ThemeColor{ThemeIndigo, ThemeEmerald, ThemeRose}
}

// AllDetailLevels returns all available detail levels.
func AllDetailLevels() []DetailLevel {
	return []DetailLevel{DetailConcise, DetailDetailed}
}
