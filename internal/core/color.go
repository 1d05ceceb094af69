package core

// Color is a semantic colour role for a screen cell. The platform maps roles
// to terminal colours, so games never deal with ANSI codes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorSky
	ColorGround
	ColorPillow
	ColorPillowShade
	ColorFloating
	ColorGrown
	ColorLine
	ColorFeather
	ColorHUD
	ColorLife
	ColorAlert
	ColorDim
)

var colorNames = [...]string{
	ColorDefault:     "default",
	ColorSky:         "sky",
	ColorGround:      "ground",
	ColorPillow:      "pillow",
	ColorPillowShade: "pillow-shade",
	ColorFloating:    "floating",
	ColorGrown:       "grown",
	ColorLine:        "line",
	ColorFeather:     "feather",
	ColorHUD:         "hud",
	ColorLife:        "life",
	ColorAlert:       "alert",
	ColorDim:         "dim",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}
