package auth

import "testing"

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid", "Password1", true},
		{"valid long", "Sup3rSecretValue", true},
		{"too short", "Passw0r", false},
		{"no uppercase", "password1", false},
		{"no lowercase", "PASSWORD1", false},
		{"no digit", "Passwords", false},
		{"empty", "", false},
		{"digits only", "12345678", false},
		{"special chars allowed but optional", "Password1!", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsStrongPassword(tt.password); got != tt.want {
				t.Errorf("IsStrongPassword(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Password1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "Password1" {
		t.Fatal("hash equals plaintext")
	}
	if err := CheckPassword(hash, "Password1"); err != nil {
		t.Errorf("CheckPassword with correct password: %v", err)
	}
	if err := CheckPassword(hash, "Password2"); err == nil {
		t.Error("CheckPassword accepted wrong password")
	}
}
