package handler

import "testing"

func TestIsShareID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"550e8400-e29b-41d4-a716-446655440000", true},
		{"550E8400-E29B-41D4-A716-446655440000", true}, // регистр не важен
		{"550e8400-e29b-41d4-a716-44665544000", false}, // 35 символов
		{"550e8400-e29b-41d4-a716-4466554400000", false},
		{"550e8400-e29b-41d4-a716-44665544000g", false}, // не hex
		{"------------------------------------", false}, // 36 символов, но не UUID
		{"550e8400e29b41d4a716446655440000----", false}, // дефисы не на своих местах
		{"", false},
		{"'; DROP TABLE plans; --", false},
	}
	for _, tt := range tests {
		if got := isShareID(tt.id); got != tt.want {
			t.Fatalf("isShareID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}
