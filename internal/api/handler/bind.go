package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldErrors 将绑定校验错误整理为 字段 → 错误消息列表 的映射
// 非 validator 错误（如 JSON 语法错误）归入 "_body" 键
func fieldErrors(err error) map[string][]string {
	result := make(map[string][]string)

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		result["_body"] = []string{"请求体格式无效"}
		return result
	}

	for _, fe := range vErrs {
		field := strings.ToLower(fe.Field())
		result[field] = append(result[field], validationMessage(fe))
	}
	return result
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "该字段为必填项"
	case "email":
		return "邮箱格式无效"
	case "min":
		return "低于允许的最小值或长度 " + fe.Param()
	case "max":
		return "超过允许的最大值或长度 " + fe.Param()
	case "eqfield":
		return "两次输入不一致"
	case "datetime":
		return "日期格式应为 " + fe.Param()
	default:
		return "字段值无效"
	}
}
