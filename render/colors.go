package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-skier/constants"
	"github.com/lixenwraith/vi-skier/core"
)

// RGB color definitions
var (
	RgbSnow       = tcell.NewRGBColor(232, 240, 250) // Packed snow
	RgbSnowTrack  = tcell.NewRGBColor(180, 196, 220) // Groomer lines
	RgbBorder     = tcell.NewRGBColor(90, 110, 160)  // Lane fence
	RgbOffPiste   = tcell.NewRGBColor(200, 214, 232) // Outside the lane
	RgbTree       = tcell.NewRGBColor(20, 110, 40)   // Pine green
	RgbJump       = tcell.NewRGBColor(230, 120, 20)  // Ramp orange
	RgbRock       = tcell.NewRGBColor(100, 100, 110) // Granite
	RgbRival      = tcell.NewRGBColor(200, 30, 40)   // Rival red
	RgbCoin       = tcell.NewRGBColor(230, 180, 0)   // Gold
	RgbPlayer     = tcell.NewRGBColor(20, 60, 200)   // Player blue
	RgbCrash      = tcell.NewRGBColor(255, 40, 40)   // Crash flash
	RgbStatusBg   = tcell.NewRGBColor(26, 27, 38)    // Status bar background
	RgbStatusText = tcell.NewRGBColor(255, 255, 255) // Status text
	RgbHintText   = tcell.NewRGBColor(150, 150, 170) // Controls hint
	RgbBannerBg   = tcell.NewRGBColor(120, 0, 0)     // Game over banner
	RgbPausedBg   = tcell.NewRGBColor(255, 165, 0)   // Paused badge
)

// KindColor returns the foreground color of an entity kind
func KindColor(k core.Kind) tcell.Color {
	switch k {
	case core.KindTree:
		return RgbTree
	case core.KindJump:
		return RgbJump
	case core.KindRock:
		return RgbRock
	case core.KindRivalSkier:
		return RgbRival
	case core.KindCoin:
		return RgbCoin
	default:
		return RgbStatusText
	}
}

// KindGlyph returns the glyph drawn for an entity kind
func KindGlyph(k core.Kind) rune {
	switch k {
	case core.KindTree:
		return constants.GlyphTree
	case core.KindJump:
		return constants.GlyphJump
	case core.KindRock:
		return constants.GlyphRock
	case core.KindRivalSkier:
		return constants.GlyphRival
	case core.KindCoin:
		return constants.GlyphCoin
	default:
		return '?'
	}
}

// coinFrames cycles as the coin turns edge-on
var coinFrames = []rune{constants.GlyphCoin, 'S', '|', 'S'}

// CoinGlyph returns the spin frame for a coin turned yaw radians about Y
func CoinGlyph(yaw float64) rune {
	turn := math.Mod(yaw, 2*math.Pi)
	if turn < 0 {
		turn += 2 * math.Pi
	}
	idx := int(turn/(2*math.Pi)*float64(len(coinFrames))) % len(coinFrames)
	return coinFrames[idx]
}

// PlayerGlyph returns the skier glyph for a roll angle, positive roll leans left
func PlayerGlyph(roll float64) rune {
	switch {
	case roll > 1e-6:
		return constants.GlyphPlayerLeft
	case roll < -1e-6:
		return constants.GlyphPlayerRight
	default:
		return constants.GlyphPlayer
	}
}
