// Package kitmeta holds display metadata for the kits offered by the
// backend catalog. The backend only knows kit names and parts; descriptions,
// colour categories and icons are compiled into the client.
package kitmeta

import "github.com/charmbracelet/lipgloss"

// Meta is the display metadata for one kit.
type Meta struct {
	Description string
	Color       string
	Icon        string
}

// Colour categories.
const (
	ColorElectronics = "electronics"
	ColorMotors      = "motors"
	ColorSensors     = "sensors"
	ColorDefault     = "default"
)

// Default is returned for kits that have no entry in the catalog.
var Default = Meta{
	Description: "A collection of useful components",
	Color:       ColorDefault,
	Icon:        "📦",
}

var catalog = map[string]Meta{
	"Arduino Starter Kit": {
		Description: "Essential electronics for learning Arduino basics",
		Color:       ColorElectronics,
		Icon:        "⚡",
	},
	"Motor Kit": {
		Description: "Everything you need for robot mobility",
		Color:       ColorMotors,
		Icon:        "⚙️",
	},
	"Sensor Pack": {
		Description: "Environmental sensing and detection components",
		Color:       ColorSensors,
		Icon:        "📡",
	},
}

var colorVars = map[string]string{
	ColorElectronics: "--kit-electronics",
	ColorMotors:      "--kit-motors",
	ColorSensors:     "--kit-sensors",
	ColorDefault:     "--kit-default",
}

var accents = map[string]lipgloss.Color{
	"--kit-electronics": lipgloss.Color("#F5C542"), // Amber
	"--kit-motors":      lipgloss.Color("#4FA3F7"), // Blue
	"--kit-sensors":     lipgloss.Color("#43BF6D"), // Green
	"--kit-default":     lipgloss.Color("#7D56F4"), // Purple
}

// Lookup returns the metadata for a kit name, or Default when the kit is
// unknown. Names match exactly.
func Lookup(name string) Meta {
	if meta, ok := catalog[name]; ok {
		return meta
	}
	return Default
}

// ColorVar maps a colour category to its display variable identifier.
// Unrecognized categories map to the default variable.
func ColorVar(color string) string {
	if v, ok := colorVars[color]; ok {
		return v
	}
	return colorVars[ColorDefault]
}

// Accent returns the terminal colour for a display variable.
func Accent(colorVar string) lipgloss.Color {
	if c, ok := accents[colorVar]; ok {
		return c
	}
	return accents[colorVars[ColorDefault]]
}
