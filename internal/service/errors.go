package service

import "errors"

var (
	// ErrUnknownCurrency is returned when a currency code is not registered in the catalog.
	ErrUnknownCurrency = errors.New("unknown currency code")
	// ErrBudgetExceeded signals that the search budget ran out mid-enumeration.
	// The enumerator returns it together with whatever configurations were
	// already emitted; the facade decides whether the outcome is still usable.
	ErrBudgetExceeded = errors.New("search budget exceeded")
)
