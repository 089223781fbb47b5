package currency

import (
	"sort"
	"testing"
)

func TestFormatGroupsThousands(t *testing.T) {
	tests := []struct {
		amount int64
		code   string
		want   string
	}{
		{1234567, "KRW", "₩1,234,567"},
		{1000, "USD", "$1,000"},
		{0, "KRW", "₩0"},
		{999, "JPY", "¥999"},
		{-1000, "USD", "-$1,000"},
		{1000, "VND", "1,000₫"},
		{1000, "XYZ", "1,000 XYZ"},
		{1000, "krw", "₩1,000"}, // код нечувствителен к регистру
	}
	for _, tt := range tests {
		if got := Format(tt.amount, tt.code); got != tt.want {
			t.Fatalf("Format(%d, %q) = %q, want %q", tt.amount, tt.code, got, tt.want)
		}
	}
}

func TestSymbolFallsBackToCode(t *testing.T) {
	if got := Symbol("KRW"); got != "₩" {
		t.Fatalf("Symbol(KRW) = %q, want ₩", got)
	}
	if got := Symbol("xyz"); got != "XYZ" {
		t.Fatalf("Symbol(xyz) = %q, want XYZ", got)
	}
}

func TestSupportedIsSorted(t *testing.T) {
	codes := Supported()
	if len(codes) == 0 {
		t.Fatal("пустой список валют")
	}
	if !sort.StringsAreSorted(codes) {
		t.Fatalf("список не отсортирован: %v", codes)
	}
}
