package models

import "testing"

func TestUser_DisplayName(t *testing.T) {
	tests := []struct {
		name  string
		user  User
		want  string
	}{
		{"profile name wins", User{Name: "Ayesha Khan", Email: "akhan@uni.edu.pk"}, "Ayesha Khan"},
		{"falls back to email local part", User{Email: "akhan@uni.edu.pk"}, "akhan"},
		{"degenerate email", User{Email: "@uni.edu.pk"}, "User"},
		{"no email at all", User{}, "User"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}
