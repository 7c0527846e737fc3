// Package xrecent 提供按最近使用顺序排列、去重且有容量上限的列表。
//
// xrecent 基于 github.com/hashicorp/golang-lru/v2/simplelru 封装，
// 适合作为"最近打开的文件"、搜索历史、MRU 菜单等场景的数据结构，
// 也可以作为缓存的淘汰顺序记录。
//
// # 核心特性
//
//   - 泛型支持：条目类型为任意 comparable 类型
//   - 去重：重复 Push 已存在的条目会将其移到下标 0，而不是新增
//   - 最近优先：下标 0 始终是最近一次 Push 的条目
//   - 容量上限：新增条目使 Len() 超过 Cap() 时，淘汰最久未使用的条目
//   - 副本导出：Items() 返回独立副本，修改不影响列表
//
// # 容量语义
//
// Cap() 返回 [New] 时指定的容量，Push 和 Clear 都不会改变它。
// 容量为 0 是合法的：每次 Push 的条目会被立即淘汰，列表始终为空。
// 重复 Push 已存在的条目只调整顺序，不会触发淘汰。
//
// # 可选配置
//
//   - WithOnEvicted：设置条目被淘汰时的回调函数
//   - WithLogger：设置记录淘汰事件的 slog.Logger（Debug 级别）
//   - WithName：设置实例名称，用于区分日志来源
//
// # 相等与哈希
//
// Equal 要求容量相等且条目按序逐个相等。Hash 与 Equal 一致：
// 相等的列表哈希值相同。哈希值使用进程级随机种子，不可持久化或跨进程比较。
//
// # 错误处理
//
// 无效参数不会 panic，而是返回错误，可用 errors.Is 判断：
//   - ErrInvalidCapacity：容量为负数（同时匹配 ErrInvalidArgument）
//   - ErrNilItem：Push 的条目为 nil（同时匹配 ErrInvalidArgument）
//   - ErrIndexOutOfRange：At 的下标超出 [0, Len())
//
// 所有操作先校验再修改，失败的调用不会改变列表。
//
// # 性能特性
//
//   - Push/Contains/Len/Cap 为 O(1)
//   - At/Items/Equal/Hash/String 为 O(n)，At 每次调用会分配一个切片，
//     需要遍历全部条目时应调用一次 Items()
//
// # 已知限制
//
//   - 非并发安全：并发访问需由调用方加锁
//   - 条目相等性遵循 Go 的 == 语义。与自身不相等的条目（含浮点 NaN）无法去重，
//     Push 返回 ErrInvalidArgument
//   - T 为接口类型时，Push 会拒绝 slice、map 等不可比较的动态值（返回 ErrInvalidArgument）
//   - 淘汰回调在 Push 内同步执行，严禁在回调中调用同一列表的方法
package xrecent
