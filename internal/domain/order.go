package domain

// Address is the slice of a shipping address the gateway cares about. The
// name pair doubles as the sandbox simulation channel in test mode.
type Address struct {
	FirstName string
	LastName  string
}

// Order is a read-only view of the host shop's order record.
type Order struct {
	Number      string
	Currency    string
	TotalCents  int64
	ShipAddress *Address
}

// Payment is a read-only view of the host shop's payment record. Number is
// the stable identifier operation references are derived from.
type Payment struct {
	Number   string
	Currency string
}
