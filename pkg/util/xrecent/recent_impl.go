package xrecent

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strings"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// typeName 是 String 输出的前缀。
const typeName = "RecentlyUsedList"

// lruList 是基于 simplelru 的 List 实现。
// simplelru 内部是带 map 索引的双向链表，Push 的去重和移到队首均为 O(1)。
type lruList[T comparable] struct {
	capacity int
	lru      *simplelru.LRU[T, struct{}]
	opts     *options[T]

	// clearing 为 true 时，Purge 触发的淘汰回调被忽略。
	clearing bool
}

func newLRUList[T comparable](capacity int, opts *options[T]) (*lruList[T], error) {
	l := &lruList[T]{
		capacity: capacity,
		opts:     opts,
	}
	// simplelru 要求 size > 0。capacity == 0 时由 Push 立即淘汰新条目。
	lru, err := simplelru.NewLRU[T, struct{}](max(capacity, 1), l.evicted)
	if err != nil {
		return nil, fmt.Errorf("xrecent: create lru: %w", err)
	}
	l.lru = lru
	return l, nil
}

func (l *lruList[T]) IsEmpty() bool {
	return l.lru.Len() == 0
}

func (l *lruList[T]) Len() int {
	return l.lru.Len()
}

func (l *lruList[T]) Cap() int {
	return l.capacity
}

func (l *lruList[T]) Clear() {
	l.clearing = true
	defer func() { l.clearing = false }()
	l.lru.Purge()
}

func (l *lruList[T]) Push(item T) error {
	if err := validateItem(item); err != nil {
		return err
	}
	l.lru.Add(item, struct{}{})
	if l.capacity == 0 {
		l.lru.RemoveOldest()
	}
	return nil
}

func (l *lruList[T]) At(index int) (T, error) {
	n := l.lru.Len()
	if index < 0 || index >= n {
		var zero T
		return zero, fmt.Errorf("%w: index %d, len %d", ErrIndexOutOfRange, index, n)
	}
	// Keys 按从旧到新排列
	return l.lru.Keys()[n-1-index], nil
}

func (l *lruList[T]) Items() []T {
	keys := l.lru.Keys()
	slices.Reverse(keys)
	return keys
}

func (l *lruList[T]) Contains(item T) bool {
	if validateItem(item) != nil {
		return false
	}
	return l.lru.Contains(item)
}

func (l *lruList[T]) Equal(other List[T]) bool {
	if o, ok := other.(*lruList[T]); ok {
		if o == nil {
			return false
		}
		if o == l {
			return true
		}
	}
	if other == nil {
		return false
	}
	if l.capacity != other.Cap() || l.Len() != other.Len() {
		return false
	}
	return slices.Equal(l.Items(), other.Items())
}

func (l *lruList[T]) Hash() uint64 {
	return hashItems(l.capacity, l.Items())
}

// String 返回形如 "RecentlyUsedList[B, A]" 的字符串，条目按 fmt.Sprint 格式化。
func (l *lruList[T]) String() string {
	var b strings.Builder
	b.WriteString(typeName)
	b.WriteByte('[')
	for i, item := range l.Items() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, item)
	}
	b.WriteByte(']')
	return b.String()
}

// evicted 是 simplelru 的淘汰回调。
func (l *lruList[T]) evicted(item T, _ struct{}) {
	if l.clearing {
		return
	}
	if l.opts.logger.Enabled(context.Background(), slog.LevelDebug) {
		l.opts.logger.Debug("xrecent: item evicted",
			slog.String("name", l.opts.name),
			slog.Any("item", item),
			slog.Int("cap", l.capacity),
		)
	}
	if l.opts.onEvicted != nil {
		l.opts.onEvicted(item)
	}
}

// validateItem 拒绝 nil 条目、不可比较的动态值和含 NaN 的条目。
//
// T 为接口类型（如 any）时，编译期约束无法阻止存入 slice 等不可比较的值，
// 这类值作为 map key 会 panic，因此在写入前检查。
func validateItem[T comparable](item T) error {
	v := any(item)
	if v == nil {
		return ErrNilItem
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Map, reflect.Func, reflect.Slice, reflect.UnsafePointer:
		if rv.IsNil() {
			return ErrNilItem
		}
	}
	if !rv.Comparable() {
		return fmt.Errorf("%w: item of type %T is not comparable", ErrInvalidArgument, v)
	}
	// 含 NaN 的条目与自身不相等，无法去重
	if item != item { //nolint:gocritic // NaN 检查
		return fmt.Errorf("%w: item %v is not equal to itself", ErrInvalidArgument, v)
	}
	return nil
}
