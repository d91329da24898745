package common

// Logical screen size used when no config overrides it.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)
