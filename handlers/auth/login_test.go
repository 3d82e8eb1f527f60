package auth

import (
	"testing"

	"github.com/admitdesk/api/utils/validation"
)

func TestLoginRequestValidation(t *testing.T) {
	v := validation.NewValidator()

	valid := LoginRequest{Email: "staff@example.com", Password: "secret-pass"}
	if err := v.ValidateStruct(valid); err != nil {
		t.Errorf("valid login request should pass, got %v", err)
	}

	cases := []struct {
		name string
		req  LoginRequest
	}{
		{"missing email", LoginRequest{Password: "secret-pass"}},
		{"missing password", LoginRequest{Email: "staff@example.com"}},
		{"malformed email", LoginRequest{Email: "not-an-email", Password: "secret-pass"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := v.ValidateStruct(tc.req); err == nil {
				t.Errorf("expected validation failure for %+v", tc.req)
			}
		})
	}
}

func TestRegisterRequestValidation(t *testing.T) {
	v := validation.NewValidator()

	valid := RegisterRequest{
		Name:          "Staff Member",
		InstituteName: "Test Institute",
		Email:         "staff@example.com",
		MobileNumber:  "9876543210",
		Password:      "secret-pass",
	}
	if err := v.ValidateStruct(valid); err != nil {
		t.Errorf("valid register request should pass, got %v", err)
	}

	short := valid
	short.Password = "short"
	if err := v.ValidateStruct(short); err == nil {
		t.Error("expected failure for a 5-character password")
	}

	badMobile := valid
	badMobile.MobileNumber = "12345"
	if err := v.ValidateStruct(badMobile); err == nil {
		t.Error("expected failure for a short mobile number")
	}
}
