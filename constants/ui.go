package constants

// Terminal Layout
const (
	// ColumnsPerUnit maps lane X to terminal columns
	ColumnsPerUnit = 2.4

	// UnitsPerRow maps Z distance to terminal rows
	UnitsPerRow = 2.0

	// PlayerRowFromBottom places the player near the bottom edge
	PlayerRowFromBottom = 5

	// HUDRows is the status bar height at the top
	HUDRows = 1

	// DeathCameraShift is the lateral camera pan (in columns) at the end of the death transition
	DeathCameraShift = 6
)

// Glyphs
const (
	GlyphPlayer      = '@'
	GlyphPlayerLeft  = '\\'
	GlyphPlayerRight = '/'
	GlyphTree        = '♣'
	GlyphJump        = '▲'
	GlyphRock        = '●'
	GlyphRival       = 'Ѫ'
	GlyphCoin        = '$'
	GlyphBorder      = '║'
	GlyphSnow        = '·'
	GlyphCrash       = '✶'
)
