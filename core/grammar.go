package core

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const identSpecials = "_-$&%*!?"

func isIdentStart(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') ||
		strings.ContainsRune(identSpecials, r)
}

func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) ||
		strings.ContainsRune(identSpecials, r)
}

// IsIdentifier reports whether s is a valid variable or label name. The first
// character is an ASCII letter or one of _-$&%*!?, the rest may also be any
// letter or number.
func IsIdentifier(s string) bool {
	if s == "" || !utf8.ValidString(s) {
		return false
	}

	for i, r := range s {
		if i == 0 && !isIdentStart(r) {
			return false
		}
		if i > 0 && !isIdentPart(r) {
			return false
		}
	}

	return true
}

// splitFrame splits a variable token into its frame and name. ok is false if
// the token does not start with a frame prefix.
func splitFrame(token string) (frame, name string, ok bool) {
	prefix, rest, found := strings.Cut(token, "@")
	if !found {
		return "", "", false
	}

	switch prefix {
	case "GF", "LF", "TF":
		return prefix, rest, true
	}

	return "", "", false
}

// IsVariable reports whether token is a frame qualified variable like GF@x.
func IsVariable(token string) bool {
	_, name, ok := splitFrame(token)
	return ok && IsIdentifier(name)
}

// IsLabel reports whether token is a valid label name.
func IsLabel(token string) bool {
	return IsIdentifier(token)
}

// IsTypeKeyword reports whether token names a value type. Only lower case is
// accepted.
func IsTypeKeyword(token string) bool {
	switch token {
	case "int", "bool", "string":
		return true
	}
	return false
}

// IsNilLiteral reports whether literal is the only nil value.
func IsNilLiteral(literal string) bool {
	return literal == "nil"
}

// IsBoolLiteral reports whether literal is true or false.
func IsBoolLiteral(literal string) bool {
	return literal == "true" || literal == "false"
}

func isDecDigit(c byte) bool { return '0' <= c && c <= '9' }
func isOctDigit(c byte) bool { return '0' <= c && c <= '7' }
func isHexDigit(c byte) bool {
	return isDecDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// digitGroups reports whether s is one or more runs of digits joined by
// single underscores, with no underscore at either end.
func digitGroups(s string, isDigit func(byte) bool) bool {
	if s == "" {
		return false
	}

	prevUnderscore := true
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '_':
			if prevUnderscore {
				return false
			}
			prevUnderscore = true
		case isDigit(s[i]):
			prevUnderscore = false
		default:
			return false
		}
	}

	return !prevUnderscore
}

// IsIntLiteral reports whether literal is an integer constant. It takes an
// optional sign followed by a decimal number without leading zeros, a
// 0x hexadecimal number, or an octal number written 0o17 or 017. Digits may
// be grouped with single underscores.
func IsIntLiteral(literal string) bool {
	s := literal
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}

	switch {
	case s == "0":
		return true
	case s == "":
		return false
	case s[0] != '0':
		return digitGroups(s, isDecDigit)
	case len(s) > 1 && (s[1] == 'x' || s[1] == 'X'):
		return digitGroups(s[2:], isHexDigit)
	case len(s) > 1 && (s[1] == 'o' || s[1] == 'O'):
		return digitGroups(s[2:], isOctDigit)
	default:
		return digitGroups(s[1:], isOctDigit)
	}
}

// IsStringLiteral reports whether literal is a valid string constant. A
// backslash may only start an escape of exactly three decimal digits.
func IsStringLiteral(literal string) bool {
	for i := 0; i < len(literal); i++ {
		if literal[i] != '\\' {
			continue
		}

		if i+3 >= len(literal) {
			return false
		}
		for j := i + 1; j <= i+3; j++ {
			if !isDecDigit(literal[j]) {
				return false
			}
		}
		i += 3
	}

	return true
}
