package services

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/commercekit/amazon-pay-gateway/internal/domain"
)

const simulationLastName = "SandboxSimulation"

// SimulationNote encodes a provider sandbox simulation directive from the
// order's shipping name pair, or returns "" when none applies. It only fires
// in test mode, when a shipping address exists and its last name is exactly
// "SandboxSimulation". The first name selects the scenario:
//
//	InvalidPaymentMethodHard-<minutes>
//	InvalidPaymentMethodSoft-<minutes>
//	AmazonRejected
//	TransactionTimedOut
//	ExpiredUnused-<minutes>
//	AmazonClosed
//
// <minutes> is optional and defaults to 1. The documented valid ranges
// (1-240, 1-60 for ExpiredUnused) are enforced by the provider sandbox, not
// here. Unrecognized reason codes are logged and produce no directive.
func SimulationNote(addr *domain.Address, testMode bool, logger *slog.Logger) string {
	if !testMode {
		return ""
	}
	if addr == nil || addr.LastName != simulationLastName {
		return ""
	}

	reason, minutes, _ := strings.Cut(addr.FirstName, "-")
	if minutes == "" {
		minutes = "1"
	}

	switch reason {
	case "InvalidPaymentMethodHard":
		return fmt.Sprintf(`{"SandboxSimulation": {"State":"Declined", "ReasonCode":"InvalidPaymentMethod", "PaymentMethodUpdateTimeInMins":%s}}`, minutes)
	case "InvalidPaymentMethodSoft":
		// "InvalidPayment Method" is the sandbox's own spelling of the
		// soft-decline code.
		return fmt.Sprintf(`{"SandboxSimulation": {"State":"Declined", "ReasonCode":"InvalidPayment Method", "PaymentMethodUpdateTimeInMins":%s, "SoftDecline":"true"}}`, minutes)
	case "AmazonRejected":
		return `{"SandboxSimulation": {"State":"Declined", "ReasonCode":"AmazonRejected"}}`
	case "TransactionTimedOut":
		return `{"SandboxSimulation": {"State":"Declined", "ReasonCode":"TransactionTimedOut"}}`
	case "ExpiredUnused":
		return fmt.Sprintf(`{"SandboxSimulation": {"State":"Closed", "ReasonCode":"ExpiredUnused", "ExpirationTimeInMins":%s}}`, minutes)
	case "AmazonClosed":
		return `{"SandboxSimulation": {"State":"Closed", "ReasonCode":"AmazonClosed"}}`
	default:
		logger.Error(
			"shipping last name requested a sandbox simulation but the first name is not a valid reason code",
			"first_name", addr.FirstName,
		)
		return ""
	}
}
