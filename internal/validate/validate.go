// Package validate содержит чистые предикаты валидации строковых полей клиента.
// Функции никогда не возвращают ошибок: некорректный вход — это просто false.
package validate

import (
	"strings"
	"unicode"
)

// cpfLength — длина CPF после нормализации (11 цифр, включая два контрольных разряда).
const cpfLength = 11

// CPF проверяет бразильский CPF по его контрольной сумме.
// Перед проверкой строка нормализуется: пробелы по краям, точки и дефисы отбрасываются.
// Любой вход с неверной длиной или нецифровыми символами считается невалидным.
func CPF(raw string) bool {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, "-", "")

	if len(s) != cpfLength {
		return false
	}

	digits := make([]int, cpfLength)
	for i, r := range s {
		if r < '0' || r > '9' {
			return false
		}
		digits[i] = int(r - '0')
	}

	first := checkDigit(digits[:9], 10)
	second := checkDigit(digits[:10], 11)

	return digits[9] == first && digits[10] == second
}

// checkDigit считает контрольный разряд: взвешенная сумма по убывающим весам,
// остаток по модулю 11; остаток меньше 2 даёт 0, иначе 11 минус остаток.
func checkDigit(digits []int, weight int) int {
	sum := 0
	for _, d := range digits {
		sum += d * weight
		weight--
	}

	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

// Email проверяет адрес на минимальную корректность формы local@domain.
// Отклоняются пустые строки, пробельные символы в любом месте, отсутствующий
// или повторяющийся @, пустая локальная часть или домен и пустые метки домена.
// Однометочные домены (user@host) считаются валидными.
func Email(raw string) bool {
	if raw == "" {
		return false
	}
	for _, r := range raw {
		if unicode.IsSpace(r) {
			return false
		}
	}
	if strings.Count(raw, "@") != 1 {
		return false
	}

	at := strings.IndexByte(raw, '@')
	local, domain := raw[:at], raw[at+1:]
	if local == "" || domain == "" {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return !strings.Contains(domain, "..")
}
