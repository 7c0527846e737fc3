// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xrecent: 最近使用列表，泛型支持、自动去重、容量上限淘汰
//
// 设计原则：
//   - 无效参数返回可用 errors.Is 判断的哨兵错误，不 panic
//   - 可选配置使用函数式 Option
package util
