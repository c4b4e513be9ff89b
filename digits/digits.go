/*
File    : pakhi-bhasha/digits/digits.go
Author  : Shafin098
Contact : shafin098@users.noreply.github.com
*/

// Package digits centralizes the Bengali/ASCII digit mapping that both the
// lexer and the _সংখ্যা builtin rely on, so the two never drift apart.
package digits

// bengaliToASCII maps each Bengali digit codepoint (U+09E6..U+09EF) to its
// ASCII equivalent.
var bengaliToASCII = map[rune]rune{
	'০': '0',
	'১': '1',
	'২': '2',
	'৩': '3',
	'৪': '4',
	'৫': '5',
	'৬': '6',
	'৭': '7',
	'৮': '8',
	'৯': '9',
}

var asciiToBengali = map[rune]rune{
	'0': '০',
	'1': '১',
	'2': '২',
	'3': '৩',
	'4': '৪',
	'5': '৫',
	'6': '৬',
	'7': '৭',
	'8': '৮',
	'9': '৯',
}

// IsDigit reports whether r is a digit in either alphabet Pakhi recognizes:
// ASCII '0'..'9' or Bengali '০'..'৯'.
func IsDigit(r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	_, ok := bengaliToASCII[r]
	return ok
}

// ToASCII maps a digit rune (Bengali or ASCII) to its ASCII equivalent,
// leaving any other rune untouched.
func ToASCII(r rune) rune {
	if ascii, ok := bengaliToASCII[r]; ok {
		return ascii
	}
	return r
}

// Normalize rewrites every digit in s (Bengali or ASCII) to its ASCII form,
// leaving everything else (including a decimal point) untouched. This is the
// single place both the lexer's numeric-literal scanner and the _সংখ্যা
// builtin go through before calling strconv.ParseFloat.
func Normalize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, ToASCII(r))
	}
	return string(out)
}

// ToBengali renders an ASCII digit string using Bengali digits, used when
// printing the canonical form of a number.
func ToBengali(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if bn, ok := asciiToBengali[r]; ok {
			out = append(out, bn)
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}
