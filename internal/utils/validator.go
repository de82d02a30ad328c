package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrValidation 请求字段验证失败
var ErrValidation = errors.New("验证失败")

var validate *validator.Validate

var identifierPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// InitValidator 初始化验证器
func InitValidator() {
	validate = validator.New()

	// 注册自定义验证函数
	validate.RegisterValidation("identifier", validateIdentifier)
	validate.RegisterValidation("username", validateUsername)
}

// GetValidator 获取验证器实例
func GetValidator() *validator.Validate {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// validateIdentifier 验证实体标识符
// 标识符用作外部引用,限制为小写字母、数字、下划线和连字符
func validateIdentifier(fl validator.FieldLevel) bool {
	identifier := fl.Field().String()
	if len(identifier) < 1 || len(identifier) > 100 {
		return false
	}
	return identifierPattern.MatchString(identifier)
}

// validateUsername 验证用户名
func validateUsername(fl validator.FieldLevel) bool {
	username := fl.Field().String()
	if len(username) < 3 || len(username) > 50 {
		return false
	}
	matched, _ := regexp.MatchString("^[a-zA-Z0-9_]+$", username)
	return matched
}

// ValidateStruct 验证结构体
func ValidateStruct(s interface{}) error {
	v := GetValidator()
	if err := v.Struct(s); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError 格式化验证错误
func formatValidationError(err error) error {
	var messages []string

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			tag := e.Tag()
			param := e.Param()

			var message string
			switch tag {
			case "required":
				message = fmt.Sprintf("%s是必填字段", field)
			case "min":
				message = fmt.Sprintf("%s长度不能小于%s", field, param)
			case "max":
				message = fmt.Sprintf("%s长度不能大于%s", field, param)
			case "identifier":
				message = fmt.Sprintf("%s只能包含小写字母、数字、下划线和连字符", field)
			case "username":
				message = fmt.Sprintf("%s只能包含字母、数字和下划线，长度3-50", field)
			default:
				message = fmt.Sprintf("%s验证失败: %s", field, tag)
			}

			messages = append(messages, message)
		}
	}

	if len(messages) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(messages, "; "))
	}

	return err
}
