package view

// Tailwind gradient classes for the page background, keyed by condition group.
const (
	ThemeClear          = "from-blue-300 via-blue-400 to-blue-500"
	ThemeClouds         = "from-gray-200 via-gray-300 to-gray-400"
	ThemeSnow           = "from-transparent to-blue-100"
	ThemeRainWithSun    = "from-blue-200  to-gray-400"
	ThemeRainWithClouds = "from-gray-300 via-gray-400 to-gray-500"
	ThemeThunderstorm   = "from-gray-400 via-gray-600 to-gray-800"
	ThemeNone           = ""
)

// Theme maps a weather condition code to a background gradient.
// Codes without a group (atmosphere 7xx, unknown) get no theme.
func Theme(conditionID int) string {
	switch {
	case conditionID == 800:
		return ThemeClear
	case conditionID > 800:
		return ThemeClouds
	case conditionID >= 600 && conditionID < 700:
		return ThemeSnow
	case conditionID >= 500 && conditionID <= 504:
		return ThemeRainWithSun
	case (conditionID > 504 && conditionID < 600) || (conditionID >= 300 && conditionID < 400):
		return ThemeRainWithClouds
	case conditionID >= 200 && conditionID < 300:
		return ThemeThunderstorm
	default:
		return ThemeNone
	}
}
