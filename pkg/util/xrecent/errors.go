package xrecent

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument 表示参数无效。
	// [ErrInvalidCapacity] 和 [ErrNilItem] 均包装此错误，可用 errors.Is 统一判断。
	ErrInvalidArgument = errors.New("xrecent: invalid argument")

	// ErrInvalidCapacity 表示容量为负数。
	ErrInvalidCapacity = fmt.Errorf("%w: capacity must not be negative", ErrInvalidArgument)

	// ErrNilItem 表示 Push 的条目为 nil。
	ErrNilItem = fmt.Errorf("%w: item must not be nil", ErrInvalidArgument)

	// ErrIndexOutOfRange 表示 At 的下标超出 [0, Len()) 范围。
	ErrIndexOutOfRange = errors.New("xrecent: index out of range")
)
