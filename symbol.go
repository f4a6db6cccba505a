// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"strconv"
	"strings"
	"unicode"
)

// Power is one factor of a compound unit symbol, e.g. {"s", -2} in "m/s²".
type Power struct {
	Symbol   string
	Exponent int
}

// Powers lists the factors of a compound symbol in order of first appearance. A symbol
// appears at most once.
type Powers []Power

// Get returns the exponent of symbol, 0 if absent.
func (p Powers) Get(symbol string) int {
	for _, power := range p {
		if power.Symbol == symbol {
			return power.Exponent
		}
	}
	return 0
}

// Map returns the powers as a symbol -> exponent map.
func (p Powers) Map() map[string]int {
	result := make(map[string]int, len(p))
	for _, power := range p {
		result[power.Symbol] = power.Exponent
	}
	return result
}

func (p Powers) add(symbol string, exponent int) Powers {
	for i := range p {
		if p[i].Symbol == symbol {
			p[i].Exponent += exponent
			return p
		}
	}
	return append(p, Power{Symbol: symbol, Exponent: exponent})
}

// compact drops zero exponents and the "1" placeholder.
func (p Powers) compact() Powers {
	result := p[:0:0]
	for _, power := range p {
		if power.Exponent != 0 && power.Symbol != oneSymbol {
			result = append(result, power)
		}
	}
	return result
}

const (
	oneSymbol    = "1"
	superscripts = "⁻⁺⁰¹²³⁴⁵⁶⁷⁸⁹"
	digits       = "-+0123456789"
	dot          = '·'
)

var (
	powToNum = strings.NewReplacer(pairs(superscripts, digits)...)
	numToPow = strings.NewReplacer(pairs(digits, superscripts)...)
)

func pairs(from, to string) []string {
	f, t := []rune(from), []rune(to)
	result := make([]string, 0, 2*len(f))
	for i := range f {
		result = append(result, string(f[i]), string(t[i]))
	}
	return result
}

func isOperator(r rune) bool {
	return r == '*' || r == '/' || r == dot
}

func isSuperscript(r rune) bool {
	return strings.ContainsRune(superscripts, r)
}

// ParseSymbol splits a compound symbol into its factors. Factors are separated by '*', '·'
// or '/', where '/' negates the exponent of the factor that follows it. Exponents are
// written as Unicode superscripts ("s²", "m⁻¹") or with a caret ("s^2"); an absent
// exponent means 1.
//
//	ParseSymbol("1/s²") // [{1 1} {s -2}]
//	ParseSymbol("m/s/s") // [{m 1} {s -2}]
func ParseSymbol(text string) (Powers, error) {
	var result Powers

	text = strings.TrimSpace(text)
	if text == "" {
		return result, nil
	}

	sign := 1
	start := 0
	first := true
	runes := []rune(text)
	for i := 0; i <= len(runes); i++ {
		if i < len(runes) && !isOperator(runes[i]) {
			continue
		}

		segment := strings.TrimSpace(string(runes[start:i]))
		if segment == "" {
			if !first || i == len(runes) {
				return nil, ParseError.New("empty factor in %q", text)
			}
		} else {
			symbol, exponent, err := parseFactor(segment)
			if err != nil {
				return nil, ParseError.New("%q: %v", text, err)
			}
			result = result.add(symbol, sign*exponent)
		}

		if i < len(runes) {
			sign = 1
			if runes[i] == '/' {
				sign = -1
			}
		}
		first = false
		start = i + 1
	}

	return result, nil
}

func parseFactor(segment string) (string, int, error) {
	if caret := strings.LastIndexByte(segment, '^'); caret >= 0 {
		exponent, err := strconv.Atoi(strings.TrimSpace(segment[caret+1:]))
		if err != nil {
			return "", 0, err
		}
		symbol := strings.TrimSpace(segment[:caret])
		if symbol == "" {
			return "", 0, strconv.ErrSyntax
		}
		return symbol, exponent, nil
	}

	symbol := strings.TrimRightFunc(segment, isSuperscript)
	exponent, err := parseExponent(segment[len(symbol):])
	if err != nil {
		return "", 0, err
	}
	symbol = strings.TrimRightFunc(symbol, unicode.IsSpace)
	if symbol == "" {
		return "", 0, strconv.ErrSyntax
	}

	return symbol, exponent, nil
}

func parseExponent(exponent string) (int, error) {
	if exponent == "" {
		return 1, nil
	}
	return strconv.Atoi(powToNum.Replace(exponent))
}

// StrExponent renders an exponent as superscript digits; 1 renders as "".
func StrExponent(exponent int) string {
	if exponent == 1 {
		return ""
	}
	return numToPow.Replace(strconv.Itoa(exponent))
}

// FormatPowers renders factors as a symbol. The first factor with a positive exponent
// leads ("1" when there is none); the rest follow with explicit '*' or '/' separators.
// Zero exponents and the "1" placeholder are dropped.
func FormatPowers(powers Powers) string {
	powers = powers.compact()

	var sb strings.Builder
	lead := -1
	for i, power := range powers {
		if power.Exponent > 0 {
			lead = i
			sb.WriteString(power.Symbol)
			sb.WriteString(StrExponent(power.Exponent))
			break
		}
	}
	if lead < 0 {
		sb.WriteString(oneSymbol)
	}

	for i, power := range powers {
		if i == lead {
			continue
		}

		exponent := power.Exponent
		if exponent > 0 {
			sb.WriteByte('*')
		} else {
			sb.WriteByte('/')
			exponent = -exponent
		}
		sb.WriteString(power.Symbol)
		sb.WriteString(StrExponent(exponent))
	}

	return sb.String()
}

// JoinSymbols combines two symbols under multiplication ('*') or division ('/').
//
//	JoinSymbols("m", "s", '/')   // "m/s"
//	JoinSymbols("m/s", "s", '/') // "m/s²"
//	JoinSymbols("1", "s", '/')   // "1/s"
func JoinSymbols(symbol1, symbol2 string, operator rune) string {
	powers1, err1 := ParseSymbol(symbol1)
	powers2, err2 := ParseSymbol(symbol2)
	if err1 != nil || err2 != nil {
		return symbol1 + string(operator) + symbol2
	}

	sign := 1
	if operator == '/' {
		sign = -1
	}
	for _, power := range powers2 {
		powers1 = powers1.add(power.Symbol, sign*power.Exponent)
	}

	return FormatPowers(powers1)
}
