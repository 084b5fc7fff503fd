package model

import "errors"

// Business-rule errors shared between the pure domain methods, the atomic
// repository operations and the services that orchestrate them. Handlers map
// these to HTTP statuses with errors.Is; anything else is a storage error and
// surfaces as a generic 500.
var (
	ErrInvalidBagSize    = errors.New("invalid bag size")
	ErrInsufficientStock = errors.New("insufficient stock to fulfil this order")
	ErrCapacityExceeded  = errors.New("godown capacity exceeded")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrOrderNotPending   = errors.New("only pending orders can be approved")
	ErrDealerInactive    = errors.New("dealer not found or inactive")

	ErrDealerNotFound    = errors.New("dealer not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvoiceNotFound   = errors.New("invoice not found")
	ErrSaleNotFound      = errors.New("sale not found")
	ErrGodownNotFound    = errors.New("godown not found")
	ErrRiceStockNotFound = errors.New("no matching rice stock found")

	ErrGodownNameTaken       = errors.New("godown name already exists")
	ErrPaymentTargetRequired = errors.New("either a sale or an invoice must be referenced, not both")
)
