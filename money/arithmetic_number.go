package money

import "github.com/n-r-w/exactnum"

// validateNumberOperation performs common validation for all Number operations.
// Returns true if the operation should proceed, false if it should fail.
// If validation fails, the Money is invalidated and the function returns false.
func (m *Money) validateNumberOperation(value exactnum.Number) bool {
	if m.IsInvalid() {
		return false
	}

	if amountDegenerate(value) {
		m.Invalidate()
		return false
	}

	return true
}

// finalizeNumberOperation performs post-operation validation and cleanup.
// Returns ErrMoneyInvalid if the operation resulted in an invalid state.
func (m *Money) finalizeNumberOperation() error {
	if amountDegenerate(m.amount) {
		m.Invalidate()
		return ErrMoneyInvalid
	}
	return nil
}

// AddNumber adds an exactnum.Number value to this Money (mutable operation).
// Sets invalid state on invalid operands or arithmetic overflow.
// Uses pointer receiver for mutable operation.
func (m *Money) AddNumber(value exactnum.Number) error {
	if !m.validateNumberOperation(value) {
		return ErrMoneyInvalid
	}

	m.amount = m.amount.Add(value)
	return m.finalizeNumberOperation()
}

// AddedNumberErr returns the sum of this Money and an exactnum.Number value (immutable operation with error).
// Uses value receiver for immutable operation.
func (m Money) AddedNumberErr(value exactnum.Number) (Money, error) {
	result := m // copy
	err := result.AddNumber(value)
	return result, err
}

// AddedNumber returns the sum of this Money and an exactnum.Number value (immutable operation without error).
// Returns invalid Money on error. Uses value receiver for immutable operation.
func (m Money) AddedNumber(value exactnum.Number) Money {
	result, _ := m.AddedNumberErr(value)
	return result
}

// SubNumber subtracts an exactnum.Number value from this Money (mutable operation).
// Sets invalid state on invalid operands or arithmetic overflow.
// Uses pointer receiver for mutable operation.
func (m *Money) SubNumber(value exactnum.Number) error {
	if !m.validateNumberOperation(value) {
		return ErrMoneyInvalid
	}

	m.amount = m.amount.Sub(value)
	return m.finalizeNumberOperation()
}

// SubtractedNumberErr returns the difference of this Money and an exactnum.Number value
// (immutable operation with error). Uses value receiver for immutable operation.
func (m Money) SubtractedNumberErr(value exactnum.Number) (Money, error) {
	result := m // copy
	err := result.SubNumber(value)
	return result, err
}

// SubtractedNumber returns the difference of this Money and an exactnum.Number value
// (immutable operation without error). Returns invalid Money on error.
// Uses value receiver for immutable operation.
func (m Money) SubtractedNumber(value exactnum.Number) Money {
	result, _ := m.SubtractedNumberErr(value)
	return result
}

// MulNumber multiplies this Money by an exactnum.Number value (mutable operation).
// Sets invalid state on invalid operands or arithmetic overflow.
// Uses pointer receiver for mutable operation.
func (m *Money) MulNumber(value exactnum.Number) error {
	if !m.validateNumberOperation(value) {
		return ErrMoneyInvalid
	}

	m.amount = m.amount.Mul(value)
	return m.finalizeNumberOperation()
}

// MultipliedNumberErr returns the product of this Money and an exactnum.Number value
// (immutable operation with error). Uses value receiver for immutable operation.
func (m Money) MultipliedNumberErr(value exactnum.Number) (Money, error) {
	result := m // copy
	err := result.MulNumber(value)
	return result, err
}

// MultipliedNumber returns the product of this Money and an exactnum.Number value
// (immutable operation without error). Returns invalid Money on error.
// Uses value receiver for immutable operation.
func (m Money) MultipliedNumber(value exactnum.Number) Money {
	result, _ := m.MultipliedNumberErr(value)
	return result
}

// DivNumber divides this Money by an exactnum.Number value (mutable operation).
// Sets invalid state on invalid operands, division by zero, or arithmetic overflow.
// Uses pointer receiver for mutable operation.
func (m *Money) DivNumber(value exactnum.Number) error {
	if !m.validateNumberOperation(value) {
		return ErrMoneyInvalid
	}

	if value.IsZero() {
		m.Invalidate()
		return ErrMoneyInvalid
	}

	m.amount = m.amount.Div(value)
	return m.finalizeNumberOperation()
}

// DividedNumberErr returns the quotient of this Money and an exactnum.Number value
// (immutable operation with error). Uses value receiver for immutable operation.
func (m Money) DividedNumberErr(value exactnum.Number) (Money, error) {
	result := m // copy
	err := result.DivNumber(value)
	return result, err
}

// DividedNumber returns the quotient of this Money and an exactnum.Number value
// (immutable operation without error). Returns invalid Money on error.
// Uses value receiver for immutable operation.
func (m Money) DividedNumber(value exactnum.Number) Money {
	result, _ := m.DividedNumberErr(value)
	return result
}
