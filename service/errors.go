package service

import "errors"

// 颜色解析相关的错误在 util 里（util.ErrUnrecognizedColor / util.ErrInvalidColor），
// 这里只放 Service 层自己的错误
var (
	ErrEmptyPalette   = errors.New("palette has no colors")
	ErrTooManyColors  = errors.New("too many colors")
	ErrNoDefaultColor = errors.New("default color is not configured")
)
