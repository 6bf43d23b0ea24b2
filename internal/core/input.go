package core

// Key identifiers understood by the simulation. Platforms translate their
// native key events (Bubble Tea strings, Ebiten key codes) into these names,
// so the game never sees a UI library type.
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyLeft       = "Left"
	KeyRight      = "Right"
)

