package xrecent

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// hashSeed 是进程级种子，保证同一进程内相等条目的哈希相同。
var hashSeed = maphash.MakeSeed()

// hashItems 依次写入容量和每个条目的哈希，顺序敏感。
//
// T 只保证 comparable，无法直接得到字节表示，
// 因此先用 maphash.Comparable 将条目映射为 uint64，再汇入 xxhash。
func hashItems[T comparable](capacity int, items []T) uint64 {
	d := xxhash.New()
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], uint64(capacity)) //nolint:gosec // capacity 已校验为非负
	_, _ = d.Write(buf[:])

	for _, item := range items {
		binary.LittleEndian.PutUint64(buf[:], maphash.Comparable(hashSeed, item))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
