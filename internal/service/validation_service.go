package service

import (
	"regexp"
	"strings"

	"challenge_hub_backend/internal/catalog"
)

// ValidationService 判定提交的答案是否正确。纯函数，无副作用。
type ValidationService struct{}

func NewValidationService() *ValidationService {
	return &ValidationService{}
}

// Validate 先去除首尾空白（不动内部空白），再按题目的校验方式比对。
// exact 忽略大小写；regex 忽略大小写且要求整串匹配；
// 模式非法或校验类型未知一律判错（fail closed）。
func (s *ValidationService) Validate(ch *catalog.Challenge, submitted string) bool {
	answer := strings.TrimSpace(submitted)

	switch ch.ValidationType {
	case catalog.ValidationExact:
		return strings.EqualFold(answer, ch.ExpectedAnswer)
	case catalog.ValidationRegex:
		re, err := regexp.Compile(`(?i)\A(?:` + ch.ExpectedAnswer + `)\z`)
		if err != nil {
			return false
		}
		return re.MatchString(answer)
	default:
		return false
	}
}
