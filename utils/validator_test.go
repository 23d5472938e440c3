package utils

import "testing"

type registerPayload struct {
	Username string `validate:"required,username"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,pwdmin"`
}

func TestValidateStructAccepts(t *testing.T) {
	p := registerPayload{Username: "trader_01", Email: "trader@example.com", Password: "secret1"}
	if err := ValidateStruct(&p); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
}

func TestValidateStructRejects(t *testing.T) {
	cases := []struct {
		name string
		p    registerPayload
	}{
		{"missing username", registerPayload{Email: "a@b.co", Password: "secret1"}},
		{"bad username chars", registerPayload{Username: "no spaces!", Email: "a@b.co", Password: "secret1"}},
		{"bad email", registerPayload{Username: "trader", Email: "not-an-email", Password: "secret1"}},
		{"short password", registerPayload{Username: "trader", Email: "a@b.co", Password: "12345"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateStruct(&tc.p); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
