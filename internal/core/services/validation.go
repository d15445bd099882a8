package services

import (
	"net/mail"
	"regexp"
	"strings"
	"time"

	"goldloan-portal/internal/core/domain"
)

// KYC field formats
var (
	mobilePattern  = regexp.MustCompile(`^[0-9]{10}$`)
	aadhaarPattern = regexp.MustCompile(`^[0-9]{12}$`)
	panPattern     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	pinPattern     = regexp.MustCompile(`^[0-9]{6}$`)
	accountPattern = regexp.MustCompile(`^[0-9]+$`)
	ifscPattern    = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
)

// ValidateKYC applies the local KYC form rules
func ValidateKYC(in domain.KYCRequest) error {
	required := []struct{ field, value string }{
		{"fullName", in.FullName},
		{"gender", in.Gender},
		{"address", in.Address},
		{"city", in.City},
		{"state", in.State},
		{"occupation", in.Occupation},
		{"income", in.Income},
		{"existingLoans", in.ExistingLoans},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return domain.Invalid(r.field, "is required")
		}
	}

	if _, err := time.Parse("2006-01-02", in.DateOfBirth); err != nil {
		return domain.Invalid("dateOfBirth", "must be a date (YYYY-MM-DD)")
	}

	formats := []struct {
		field   string
		value   string
		pattern *regexp.Regexp
		message string
	}{
		{"mobileNumber", in.MobileNumber, mobilePattern, "must be 10 digits"},
		{"aadhaarNumber", in.AadhaarNumber, aadhaarPattern, "must be 12 digits"},
		{"panNumber", in.PanNumber, panPattern, "must look like ABCDE1234F"},
		{"pinCode", in.PinCode, pinPattern, "must be 6 digits"},
		{"bankAccountNumber", in.BankAccountNumber, accountPattern, "must be digits only"},
		{"ifscCode", in.IfscCode, ifscPattern, "must look like ABCD0123456"},
	}
	for _, f := range formats {
		if !f.pattern.MatchString(f.value) {
			return domain.Invalid(f.field, f.message)
		}
	}
	return nil
}

func validateEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.Invalid("email", "must be a valid email address")
	}
	return nil
}

func validateNewPassword(password, confirm string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	return nil
}
