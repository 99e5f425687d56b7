package exactnum

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/n-r-w/exactnum/internal/bigdecimal"
	"github.com/n-r-w/exactnum/internal/decimal128"
)

// maxParseExponentMagnitude bounds the literal's scientific exponent so a
// pathological literal like "1e999999999" cannot force an unbounded
// allocation; exceeding it is the "overflow of BigDecimal" parse error
// kind of spec §7.
const maxParseExponentMagnitude = 1_000_000

// Parse parses s under the default (non-JS-compat) grammar of spec §6:
// `sign? digits ('.' digits)? ([eE] sign? digits)?`, the fraction form
// `sign? digits '/' digits` that Number.String emits for a non-terminating
// rational, or one of the reserved tokens NaN / Infinity / -Infinity / -0.
// Empty input returns ErrEmptyInput. Parse(n.String()) round-trips to n for
// every non-NaN Number (spec §6's round-trip law).
func Parse(s string) (Number, error) { return ParseWithConfig(s, DefaultConfig()) }

// ParseWithConfig is Parse, honoring cfg.JSStringParse (empty string parses
// to 0, surrounding whitespace is trimmed).
func ParseWithConfig(s string, cfg Config) (Number, error) {
	if cfg.JSStringParse {
		s = strings.TrimSpace(s)
		if s == "" {
			return ZERO, nil
		}
	}
	if s == "" {
		return Number{}, ErrEmptyInput
	}

	switch s {
	case "NaN":
		return NaN(), nil
	case "Infinity":
		return PositiveInfinity(), nil
	case "-Infinity":
		return NegativeInfinity(), nil
	case "-0":
		return NegativeZero(), nil
	}

	if idx := strings.IndexByte(s, '/'); idx >= 0 {
		return parseFraction(s, idx)
	}

	neg, mantissa, scale, err := parseDecimalLiteral(s)
	if err != nil {
		return Number{}, err
	}
	return numberFromMantissaScale(neg, mantissa, scale), nil
}

// parseFraction parses the sign? digits '/' digits form produced by
// Number.String for a non-terminating rational (display.go), where slash is
// at index idx. The numerator carries the sign; the denominator, matching
// Display's own output, never does. A zero or malformed denominator is an
// error rather than FromFraction's silent NaN, since Parse's contract is to
// reject malformed input explicitly (spec §7).
func parseFraction(s string, idx int) (Number, error) {
	numeratorStr, denominatorStr := s[:idx], s[idx+1:]
	numerator, err := strconv.ParseInt(numeratorStr, 10, 64)
	if err != nil {
		return Number{}, fmt.Errorf("%w: invalid fraction numerator", ErrInvalidCharacter)
	}
	denominator, err := strconv.ParseUint(denominatorStr, 10, 64)
	if err != nil {
		return Number{}, fmt.Errorf("%w: invalid fraction denominator", ErrInvalidCharacter)
	}
	if denominator == 0 {
		return Number{}, fmt.Errorf("%w: zero fraction denominator", ErrInvalidCharacter)
	}
	return FromFraction(numerator, denominator), nil
}

// parseDecimalLiteral scans sign? digits ('.' digits)? ([eE] sign? digits)?
// and returns the value as neg * mantissa * 10^-scale.
func parseDecimalLiteral(s string) (neg bool, mantissa *big.Int, scale int64, err error) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	start := i
	var digits strings.Builder
	sawSeparator := false
	fracDigits := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits.WriteByte(c)
			if sawSeparator {
				fracDigits++
			}
			i++
		case c == '.':
			if sawSeparator {
				return false, nil, 0, ErrMultipleSeparators
			}
			sawSeparator = true
			i++
		case c == 'e' || c == 'E':
			goto exponent
		default:
			return false, nil, 0, fmt.Errorf("%w at position %d", ErrInvalidCharacter, i)
		}
	}
exponent:
	if digits.Len() == 0 && i == start {
		return false, nil, 0, fmt.Errorf("%w at position %d", ErrInvalidCharacter, i)
	}

	var exponent int64
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		expNeg := false
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			expNeg = s[i] == '-'
			i++
		}
		expStart := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			exponent = exponent*10 + int64(s[i]-'0')
			i++
		}
		if i == expStart {
			return false, nil, 0, fmt.Errorf("%w at position %d", ErrInvalidCharacter, i)
		}
		if expNeg {
			exponent = -exponent
		}
	}
	if i != len(s) {
		return false, nil, 0, fmt.Errorf("%w at position %d", ErrInvalidCharacter, i)
	}
	if exponent > maxParseExponentMagnitude || exponent < -maxParseExponentMagnitude {
		return false, nil, 0, ErrOverflow
	}

	digitStr := digits.String()
	if digitStr == "" {
		digitStr = "0"
	}
	m, ok := new(big.Int).SetString(digitStr, 10)
	if !ok {
		return false, nil, 0, fmt.Errorf("%w at position %d", ErrInvalidCharacter, start)
	}
	scale = int64(fracDigits) - exponent
	if scale > maxParseExponentMagnitude || scale < -maxParseExponentMagnitude {
		return false, nil, 0, ErrOverflow
	}
	return neg, m, scale, nil
}

// numberFromMantissaScale implements from_decimal (spec §4.2): store as a
// Decimal128 if the mantissa/scale fit its 28-digit bound, otherwise
// BigDecimal, then attempt rational recovery immediately so a terminating
// literal like "0.1" is stored as Rational.
func numberFromMantissaScale(neg bool, mantissa *big.Int, scale int64) Number {
	if scale >= 0 && scale <= decimal128.MaxScale {
		if d, ok := decimal128.New(neg, mantissa, int(scale)); ok {
			return demote(decimalValue(d), Exact)
		}
	}
	b := bigdecimal.New(neg, mantissa, scale)
	return demote(bigDecimalValue(b), Exact)
}
