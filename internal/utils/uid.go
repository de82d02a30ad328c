package utils

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidUID 无效的UID
var ErrInvalidUID = errors.New("invalid uid")

// ParseUID 在请求边界解析UID
// 空串、非数字、零或负数一律视为无效,内部代码只接收已验证的正整数
func ParseUID(raw string) (uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrInvalidUID
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, ErrInvalidUID
	}

	return uint(id), nil
}
