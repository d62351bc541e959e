package validator

import "testing"

type sampleRequest struct {
	Name   string `json:"name" validate:"required,min=2"`
	Email  string `json:"email" validate:"required,email"`
	Date   string `json:"date" validate:"omitempty,dateonly"`
	Coupon string `json:"coupon" validate:"omitempty,couponcode"`
}

func TestValidateUsesJSONFieldNames(t *testing.T) {
	errs := Validate(&sampleRequest{Name: "x", Email: "nope"})
	if errs == nil {
		t.Fatal("expected validation errors")
	}
	if _, ok := errs["name"]; !ok {
		t.Fatalf("errors = %v, want key 'name'", errs)
	}
	if _, ok := errs["email"]; !ok {
		t.Fatalf("errors = %v, want key 'email'", errs)
	}
}

func TestValidateValidStruct(t *testing.T) {
	errs := Validate(&sampleRequest{Name: "Jane", Email: "jane@example.com", Date: "2027-06-01", Coupon: "welcome10"})
	if errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestDateonlyTag(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"2027-06-01", true},
		{"", true}, // emptiness is required's job
		{"2027-6-1", false},
		{"01-06-2027", false},
		{"2027-13-40", false},
		{"yesterday", false},
	}

	for _, tt := range tests {
		err := ValidateVar(tt.value, "dateonly")
		if (err == nil) != tt.ok {
			t.Errorf("dateonly(%q): err = %v, want ok=%v", tt.value, err, tt.ok)
		}
	}
}

func TestCouponcodeTag(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"welcome10", true},
		{"SUMMER_20", true},
		{"a-b", true},
		{"x", false},
		{"has space", false},
		{"way-too-long-coupon-code-over-thirty-two-chars", false},
	}

	for _, tt := range tests {
		err := ValidateVar(tt.value, "couponcode")
		if (err == nil) != tt.ok {
			t.Errorf("couponcode(%q): err = %v, want ok=%v", tt.value, err, tt.ok)
		}
	}
}

func TestImgcategoryTag(t *testing.T) {
	for _, valid := range []string{"nature", "accommodation"} {
		if err := ValidateVar(valid, "imgcategory"); err != nil {
			t.Errorf("imgcategory(%q): unexpected error %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "food", "Nature"} {
		if err := ValidateVar(invalid, "imgcategory"); err == nil {
			t.Errorf("imgcategory(%q): expected error", invalid)
		}
	}
}
