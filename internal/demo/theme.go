package demo

// Shared colours.
const (
	darkPrimary      = "#383838"
	mediumPrimary    = "#46cca9"
	veryLightPrimary = "#dcf3ec"
	lightSecondary   = "#55caac"
	textOnDark       = "#d0ddd5"
	textOnLight      = "#383838"
	bodyBackground   = "#f6f7f7"
)
