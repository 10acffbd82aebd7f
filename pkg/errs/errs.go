package errs

import "errors"

// 领域错误：存储层的约束冲突/未命中在 repository 层翻译成这两个哨兵错误，
// 上层只依赖 errors.Is 判断。
var (
	// ErrNotFound 资源不存在（用户名/用户ID/帖子ID 未命中）
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists 唯一约束冲突（用户名或邮箱已占用）
	ErrAlreadyExists = errors.New("resource already exists")
)
