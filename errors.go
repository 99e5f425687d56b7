package exactnum

import "errors"

// Parse error sentinels, per spec §7's taxonomy: returned values, never
// panics. Wrap with fmt.Errorf("%w: ...") for positional detail, mirroring
// the teacher's money.ErrMoneyInvalid / ErrMoneyCurrencyMismatch style.
var (
	// ErrEmptyInput is returned by Parse for an empty string, unless
	// Config.JSStringParse is set (in which case empty parses to 0).
	ErrEmptyInput = errors.New("exactnum: empty input")
	// ErrInvalidCharacter is returned when a byte outside the parse
	// grammar is encountered.
	ErrInvalidCharacter = errors.New("exactnum: invalid character")
	// ErrMultipleSeparators is returned when more than one '.' appears.
	ErrMultipleSeparators = errors.New("exactnum: multiple decimal separators")
	// ErrOverflow is returned when a BigDecimal literal's exponent is
	// large enough that materializing it would be unreasonable.
	ErrOverflow = errors.New("exactnum: overflow")
	// ErrNoValue is returned by lossy integer coercions and by
	// to_decimal() when the source Number has no value in the target
	// representation — never as a panic, per spec §7.
	ErrNoValue = errors.New("exactnum: no value")
)
