package swap

import (
	"github.com/pkg/errors"
)

var (
	ErrUnknownCurrency = errors.New("unknown currency")
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
	ErrZeroPrice       = errors.New("currency has no price")
)

// Rate returns how many units of to one unit of from buys. A currency always
// trades 1:1 with itself, whether or not the table knows it.
func (t *Table) Rate(from, to string) (float64, error) {
	if from == to {
		return 1, nil
	}
	pFrom, ok := t.prices[from]
	if !ok {
		return 0, errors.Wrap(ErrUnknownCurrency, from)
	}
	pTo, ok := t.prices[to]
	if !ok {
		return 0, errors.Wrap(ErrUnknownCurrency, to)
	}
	if pTo.Price == 0 {
		return 0, errors.Wrap(ErrZeroPrice, to)
	}
	return pFrom.Price / pTo.Price, nil
}

// Convert returns the amount of to received for amount of from.
func (t *Table) Convert(amount float64, from, to string) (float64, error) {
	if !(amount > 0) {
		return 0, ErrInvalidAmount
	}
	rate, err := t.Rate(from, to)
	if err != nil {
		return 0, err
	}
	return amount * rate, nil
}

// ConvertReverse returns the amount of from needed to receive amount of to.
func (t *Table) ConvertReverse(amount float64, from, to string) (float64, error) {
	if !(amount > 0) {
		return 0, ErrInvalidAmount
	}
	rate, err := t.Rate(from, to)
	if err != nil {
		return 0, err
	}
	if rate == 0 {
		return 0, errors.Wrap(ErrZeroPrice, from)
	}
	return amount / rate, nil
}
