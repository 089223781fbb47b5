// Package currency содержит чистые функции отображения валют и сумм.
package currency

import (
	"sort"
	"strconv"
	"strings"
)

// entry описывает поддерживаемую валюту.
type entry struct {
	symbol string
	name   string
	suffix bool // символ ставится после суммы (например "1,000₫")
}

var currencies = map[string]entry{
	"KRW": {symbol: "₩", name: "대한민국 원"},
	"USD": {symbol: "$", name: "미국 달러"},
	"JPY": {symbol: "¥", name: "일본 엔"},
	"EUR": {symbol: "€", name: "유로"},
	"CNY": {symbol: "¥", name: "중국 위안"},
	"GBP": {symbol: "£", name: "영국 파운드"},
	"TWD": {symbol: "NT$", name: "대만 달러"},
	"THB": {symbol: "฿", name: "태국 바트"},
	"SGD": {symbol: "S$", name: "싱가포르 달러"},
	"VND": {symbol: "₫", name: "베트남 동", suffix: true},
}

// Symbol возвращает символ валюты по коду; для неизвестного кода - сам код.
func Symbol(code string) string {
	if e, ok := currencies[strings.ToUpper(code)]; ok {
		return e.symbol
	}
	return strings.ToUpper(code)
}

// Name возвращает отображаемое название валюты; для неизвестного кода - сам код.
func Name(code string) string {
	if e, ok := currencies[strings.ToUpper(code)]; ok {
		return e.name
	}
	return strings.ToUpper(code)
}

// Supported возвращает отсортированный список поддерживаемых кодов валют.
func Supported() []string {
	codes := make([]string, 0, len(currencies))
	for code := range currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Format форматирует сумму с разделением тысяч и символом валюты,
// например Format(1234567, "KRW") -> "₩1,234,567".
func Format(amount int64, code string) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	grouped := b.String()

	var out string
	e, ok := currencies[strings.ToUpper(code)]
	switch {
	case !ok:
		// Неизвестный код пишем после суммы через пробел
		out = grouped + " " + strings.ToUpper(code)
	case e.suffix:
		out = grouped + e.symbol
	default:
		out = e.symbol + grouped
	}
	if neg {
		out = "-" + out
	}
	return out
}
