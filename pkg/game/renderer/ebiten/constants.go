package ebiten

import "image/color"

// Color palette for the game
var (
	colorBackground      = color.RGBA{11, 18, 32, 255}    // Night blue
	colorFloor           = color.RGBA{26, 34, 52, 255}    // Maze floor
	colorCeiling         = color.RGBA{8, 12, 22, 255}     // First-person sky
	colorWall            = color.RGBA{90, 108, 137, 255}  // Slate
	colorWallEdge        = color.RGBA{130, 150, 185, 255} // Lit wall face
	colorBall            = color.RGBA{99, 102, 241, 255}  // Indigo
	colorBallMark        = color.RGBA{224, 231, 255, 255} // Stripe on the ball
	colorGlow            = color.RGBA{129, 140, 248, 255} // Light around the ball
	colorGoal            = color.RGBA{251, 191, 36, 255}  // Amber
	colorStart           = color.RGBA{45, 212, 191, 255}  // Teal ring
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorDenied          = color.RGBA{255, 100, 100, 255} // Bright red
	colorLevel           = color.RGBA{125, 211, 252, 255} // Sky blue
	colorWin             = color.RGBA{100, 255, 150, 255} // Green
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
	colorSpeedBar        = color.RGBA{129, 140, 248, 255}
	colorMenuShade       = color.RGBA{0, 0, 0, 150}
	colorMenuHighlight   = color.RGBA{60, 50, 110, 200}
)

// Layout
const (
	defaultWindowWidth  = 1280
	defaultWindowHeight = 800
	hudHeight           = 64 // pixels reserved above the top-down map
	mapMargin           = 20 // pixels around the top-down map
	baseFontSize        = 16.0
	maxMessages         = 5
)

// Effects
const (
	bumpShake        = 0.15 // intensity and duration of the wall bump shake
	winShake         = 0.5
	winFlash         = 0.6 // seconds
	headBobFreq      = 8.5 // radians per second of rolling at full speed
	headBobAmp       = 0.06
	wallShadeFalloff = 0.12
	goalPulsePeriod  = 2.0 // seconds
)
