package validator

import "testing"

type sessionForm struct {
	Title string `validate:"required"`
	Date  string `validate:"ymd"`
	Start string `validate:"hhmm"`
}

func TestValidateCustomTags(t *testing.T) {
	v := New()

	cases := []struct {
		name    string
		form    sessionForm
		wantErr bool
	}{
		{"valid", sessionForm{Title: "Plenary", Date: "2026-09-12", Start: "09:30"}, false},
		{"missing title", sessionForm{Date: "2026-09-12", Start: "09:30"}, true},
		{"bad date", sessionForm{Title: "Plenary", Date: "12/09/2026", Start: "09:30"}, true},
		{"bad time", sessionForm{Title: "Plenary", Date: "2026-09-12", Start: "9:30am"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(&tc.form)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
