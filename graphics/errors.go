package graphics

import "errors"

var (
	ErrDisposed      = errors.New("graphics: use of disposed resource")
	ErrEmptyRegion   = errors.New("graphics: empty region")
	ErrShaderCompile = errors.New("graphics: shader compile failed")
	ErrTextureSlot   = errors.New("graphics: texture slot out of range")
	ErrRegionSize    = errors.New("graphics: source size does not match region")
)
