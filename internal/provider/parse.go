package provider

// OperationType labels which remote operation a response belongs to. The
// provider derives its field names from this label.
type OperationType string

const (
	Authorization OperationType = "Authorization"
	Capture       OperationType = "Capture"
	Refund        OperationType = "Refund"
	Cancel        OperationType = "Cancel"
)

// Status states reported by the provider.
const (
	StateOpen      = "Open"
	StateCompleted = "Completed"
	StatePending   = "Pending"
	StateDeclined  = "Declined"
	StateClosed    = "Closed"
)

// responseKeys holds the provider field names for one operation type. The
// provider names everything "{Type}Response" / "{Type}Result" / "{Type}Details"
// except authorizations, whose wrapper and result keys use the literal prefix
// "Authorize". Keeping the irregularity as a table entry keeps it out of the
// accessor logic.
type responseKeys struct {
	Wrapper   string
	Result    string
	Details   string
	ID        string
	Reference string
	Amount    string
	Status    string
}

var responseKeyTable = map[OperationType]responseKeys{
	Authorization: {
		Wrapper:   "AuthorizeResponse",
		Result:    "AuthorizeResult",
		Details:   "AuthorizationDetails",
		ID:        "AmazonAuthorizationId",
		Reference: "ReferenceAuthorizationId",
		Amount:    "AuthorizationAmount",
		Status:    "AuthorizationStatus",
	},
	Capture: {
		Wrapper:   "CaptureResponse",
		Result:    "CaptureResult",
		Details:   "CaptureDetails",
		ID:        "AmazonCaptureId",
		Reference: "ReferenceCaptureId",
		Amount:    "CaptureAmount",
		Status:    "CaptureStatus",
	},
	Refund: {
		Wrapper:   "RefundResponse",
		Result:    "RefundResult",
		Details:   "RefundDetails",
		ID:        "AmazonRefundId",
		Reference: "ReferenceRefundId",
		Amount:    "RefundAmount",
		Status:    "RefundStatus",
	},
	Cancel: {
		Wrapper:   "CancelResponse",
		Result:    "CancelResult",
		Details:   "CancelDetails",
		ID:        "AmazonCancelId",
		Reference: "ReferenceCancelId",
		Amount:    "CancelAmount",
		Status:    "CancelStatus",
	},
}

// ParsedResponse is a read-only view over a raw response for one operation
// type. Every accessor tolerates missing keys and returns the zero value.
type ParsedResponse struct {
	typ  OperationType
	raw  Response
	keys responseKeys
}

// ParseResponse wraps raw for the given operation type.
func ParseResponse(typ OperationType, raw Response) *ParsedResponse {
	return &ParsedResponse{typ: typ, raw: raw, keys: responseKeyTable[typ]}
}

func (p *ParsedResponse) Type() OperationType { return p.typ }

func (p *ParsedResponse) Raw() Response { return p.raw }

func (p *ParsedResponse) details(path ...string) (string, bool) {
	full := append([]string{p.keys.Wrapper, p.keys.Result, p.keys.Details}, path...)
	return p.raw.DigString(full...)
}

// ID returns the provider-assigned identifier for the operation, e.g.
// AmazonAuthorizationId or AmazonCaptureId. Empty when absent.
func (p *ParsedResponse) ID() string {
	id, _ := p.details(p.keys.ID)
	return id
}

// ReferenceID returns the echoed caller reference identifier. Empty when absent.
func (p *ParsedResponse) ReferenceID() string {
	ref, _ := p.details(p.keys.Reference)
	return ref
}

// Amount returns the operation amount in major units as reported by the provider.
func (p *ParsedResponse) Amount() string {
	amount, _ := p.details(p.keys.Amount, "Amount")
	return amount
}

// CurrencyCode returns the operation currency as reported by the provider.
func (p *ParsedResponse) CurrencyCode() string {
	code, _ := p.details(p.keys.Amount, "CurrencyCode")
	return code
}

// State returns the operation status state, e.g. "Open" or "Declined".
func (p *ParsedResponse) State() string {
	state, _ := p.details(p.keys.Status, "State")
	return state
}

// ReasonCode returns the status reason code accompanying a non-success state.
func (p *ParsedResponse) ReasonCode() string {
	reason, _ := p.details(p.keys.Status, "ReasonCode")
	return reason
}

// Success reports whether the response is a success for its operation type:
// captures must be Completed, authorizations must be Open. For refunds and
// cancellations the provider acknowledgement carries no comparable sub-status,
// so this generic predicate reports false; callers interpret those themselves.
func (p *ParsedResponse) Success() bool {
	switch p.typ {
	case Capture:
		return p.State() == StateCompleted
	case Authorization:
		return p.State() == StateOpen
	default:
		return false
	}
}
