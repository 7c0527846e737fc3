package xrecent

import "log/slog"

// Option 定义 List 可选配置函数类型。
type Option[T comparable] func(*options[T])

type options[T comparable] struct {
	onEvicted func(item T)
	logger    *slog.Logger
	name      string
}

func defaultOptions[T comparable]() options[T] {
	return options[T]{
		logger: slog.Default(),
	}
}

// WithOnEvicted 设置条目因容量上限被淘汰时的回调函数。
//
// 回调在 Push 内同步执行。Clear 不会触发回调。
// 严禁在回调中调用同一 List 的方法。
func WithOnEvicted[T comparable](fn func(item T)) Option[T] {
	return func(o *options[T]) {
		o.onEvicted = fn
	}
}

// WithLogger 设置自定义日志记录器，用于记录淘汰事件（Debug 级别）。
// 默认使用 slog.Default()。传入 nil 将被忽略，保持使用默认值。
func WithLogger[T comparable](logger *slog.Logger) Option[T] {
	return func(o *options[T]) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName 设置 List 名称，用于在多实例场景下区分日志来源。
func WithName[T comparable](name string) Option[T] {
	return func(o *options[T]) {
		o.name = name
	}
}
