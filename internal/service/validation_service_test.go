package service_test

import (
	"testing"

	"challenge_hub_backend/internal/catalog"
	"challenge_hub_backend/internal/service"
)

func TestValidateExact(t *testing.T) {
	v := service.NewValidationService()
	ch := &catalog.Challenge{
		ID:             "sql-001",
		Points:         50,
		ValidationType: catalog.ValidationExact,
		ExpectedAnswer: "SELECT",
	}

	cases := []struct {
		submitted string
		want      bool
	}{
		{"SELECT", true},
		{"select", true},
		{" SELECT ", true},
		{"\tSeLeCt\n", true},
		{"S ELECT", false}, // 内部空白不做归一化
		{"SELECT *", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := v.Validate(ch, tc.submitted); got != tc.want {
			t.Errorf("Validate(%q) = %v, want %v", tc.submitted, got, tc.want)
		}
	}
}

func TestValidateRegexFullMatch(t *testing.T) {
	v := service.NewValidationService()
	ch := &catalog.Challenge{
		ID:             "arch-001",
		Points:         150,
		ValidationType: catalog.ValidationRegex,
		ExpectedAnswer: `auto\s*scal(e|ing)`,
	}

	cases := []struct {
		submitted string
		want      bool
	}{
		{"autoscaling", true},
		{"AUTO SCALING", true},
		{"autoscale", true},
		{"  autoscaling  ", true},
		{"it has autoscaling", false}, // 必须整串匹配
		{"autoscalingly", false},
		{"scaling", false},
	}

	for _, tc := range cases {
		if got := v.Validate(ch, tc.submitted); got != tc.want {
			t.Errorf("Validate(%q) = %v, want %v", tc.submitted, got, tc.want)
		}
	}
}

func TestValidateMalformedPatternFailsClosed(t *testing.T) {
	v := service.NewValidationService()
	ch := &catalog.Challenge{
		ID:             "bad-001",
		Points:         10,
		ValidationType: catalog.ValidationRegex,
		ExpectedAnswer: `([`,
	}

	if v.Validate(ch, "anything") {
		t.Error("malformed pattern must never match")
	}
	if v.Validate(ch, "([") {
		t.Error("malformed pattern must never match, even its own text")
	}
}

func TestValidateUnknownTypeFailsClosed(t *testing.T) {
	v := service.NewValidationService()
	ch := &catalog.Challenge{
		ID:             "odd-001",
		Points:         10,
		ValidationType: catalog.ValidationType("fuzzy"),
		ExpectedAnswer: "whatever",
	}

	if v.Validate(ch, "whatever") {
		t.Error("unknown validation type must never match")
	}
}
