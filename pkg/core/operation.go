package core

// Operation represents a type of action that can be performed on an exchange.
type Operation int

// Operation constants define all supported exchange operations.
const (
	// OpUnknown marks a request built without a logical operation.
	OpUnknown Operation = iota
	// OpGetTicker retrieves current market ticker data for an instrument.
	OpGetTicker
	// OpGetBalance retrieves account balance information.
	OpGetBalance
	// OpGetPositions retrieves open positions.
	OpGetPositions
)

// String returns the string representation of the operation.
func (o Operation) String() string {
	return [...]string{
		"UNKNOWN",
		"GET_TICKER",
		"GET_BALANCE",
		"GET_POSITIONS",
	}[o]
}
