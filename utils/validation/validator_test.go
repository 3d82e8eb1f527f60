package validation

import (
	"testing"
)

type admissionForm struct {
	Mobile string `validate:"required,mobile"`
	Course string `validate:"required,course"`
	Batch  string `validate:"required,batch"`
}

func TestCustomTagsAcceptValidForm(t *testing.T) {
	v := NewValidator()

	form := admissionForm{
		Mobile: "9876543210",
		Course: "Fullstack Development",
		Batch:  "9.30",
	}
	if err := v.ValidateStruct(form); err != nil {
		t.Errorf("valid form should pass, got %v", err)
	}
}

func TestCustomTagsRejectInvalidValues(t *testing.T) {
	v := NewValidator()

	cases := []struct {
		name string
		form admissionForm
	}{
		{"short mobile", admissionForm{Mobile: "12345", Course: "UI/UX", Batch: "9.30"}},
		{"mobile with letters", admissionForm{Mobile: "98765abcde", Course: "UI/UX", Batch: "9.30"}},
		{"unknown course", admissionForm{Mobile: "9876543210", Course: "Astrology", Batch: "9.30"}},
		{"unknown batch", admissionForm{Mobile: "9876543210", Course: "UI/UX", Batch: "8.00"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := v.ValidateStruct(tc.form); err == nil {
				t.Errorf("expected validation failure for %+v", tc.form)
			}
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.ValidateStruct(admissionForm{Mobile: "12345", Course: "Astrology", Batch: ""})
	if err == nil {
		t.Fatal("expected validation errors")
	}

	formatted := FormatValidationErrors(err)
	if formatted["mobile"] == "" {
		t.Error("expected a message for mobile")
	}
	if formatted["course"] == "" {
		t.Error("expected a message for course")
	}
	if formatted["batch"] == "" {
		t.Error("expected a message for batch")
	}
}

func TestValidateMobile(t *testing.T) {
	if !ValidateMobile("9876543210") {
		t.Error("10 digits should be valid")
	}
	for _, bad := range []string{"987654321", "98765432101", "98765-4321", ""} {
		if ValidateMobile(bad) {
			t.Errorf("%q should be invalid", bad)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	if !ValidateEmail("staff@example.com") {
		t.Error("valid email rejected")
	}
	for _, bad := range []string{"", "no-at-sign", "a@b", "@example.com"} {
		if ValidateEmail(bad) {
			t.Errorf("%q should be invalid", bad)
		}
	}
}

func TestSanitizeString(t *testing.T) {
	cases := map[string]string{
		"  Aarav   Sharma  ": "Aarav Sharma",
		"plain":              "plain",
		"   ":                "",
	}
	for in, want := range cases {
		if got := SanitizeString(in); got != want {
			t.Errorf("SanitizeString(%q) = %q, want %q", in, got, want)
		}
	}
}
