package xrecent

import "fmt"

// List 是按最近使用顺序排列、去重且有容量上限的列表。
// 下标 0 是最近一次 Push 的条目。
//
// List 不是并发安全的，并发访问需由调用方加锁。
type List[T comparable] interface {
	fmt.Stringer

	// IsEmpty 当且仅当 Len() == 0 时返回 true。
	IsEmpty() bool

	// Len 返回当前条目数。
	Len() int

	// Cap 返回创建时指定的容量，生命周期内不变。
	Cap() int

	// Clear 清空所有条目，容量不变。幂等。
	// 被清空的条目不视为淘汰，不会触发 [WithOnEvicted] 回调。
	Clear()

	// Push 将 item 置为最近使用的条目。
	//
	//   - 如果已存在相等的条目，将其移到下标 0，排在它前面的条目各后移一位
	//   - 否则插入到下标 0；超出容量时淘汰最久未使用的条目
	//   - item 为 nil 时返回 [ErrNilItem]，列表不变
	Push(item T) error

	// At 返回下标 index 处的条目（0 为最近使用）。
	// index < 0 或 index >= Len() 时返回零值和 [ErrIndexOutOfRange]。
	At(index int) (T, error)

	// Items 返回全部条目的副本，下标 0 在前。
	// 修改返回的切片不会影响 List。空列表返回非 nil 的空切片。
	Items() []T

	// Contains 检查是否存在相等的条目，不改变顺序。
	Contains(item T) bool

	// Equal 当 other 非 nil、容量相等且条目逐个按序相等时返回 true。
	Equal(other List[T]) bool

	// Hash 返回与 Equal 一致的哈希值：相等的 List 哈希值相同。
	// 哈希值仅在同一进程内稳定。
	Hash() uint64
}

// New 创建容量为 capacity 的空 List。
// capacity < 0 时返回 [ErrInvalidCapacity]。
// capacity == 0 是合法的：每次 Push 的条目都会被立即淘汰，列表始终为空。
func New[T comparable](capacity int, opts ...Option[T]) (List[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	o := defaultOptions[T]()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	l, err := newLRUList(capacity, &o)
	if err != nil {
		return nil, err
	}
	return l, nil
}
