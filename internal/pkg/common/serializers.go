package common

import (
	"fmt"

	"github.com/workearnest-byte/MoMo-More/internal/pkg/consts"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/models"
)

// SerializeAcceptanceLedgerFields flattens a confirmed acceptance into the
// CSV row published to the ledger topic. Field order is part of the contract
// with the ledger consumer; the transaction reference leads because it is
// also the message key.
func SerializeAcceptanceLedgerFields(acceptance models.LoanAcceptance) []string {
	bankAccount := ""
	if acceptance.BankAccount != nil {
		bankAccount = *acceptance.BankAccount
	}

	return []string{
		acceptance.TransactionRef,
		acceptance.TrustScoreResponse.MSISDN,
		acceptance.TrustScoreResponse.RequestID,
		FormatFloat(acceptance.TrustScoreResponse.TrustScore),
		FormatFloat(acceptance.SelectedLoanOption.Amount),
		FormatFloat(acceptance.SelectedLoanOption.InterestRatePercent),
		FormatFloat(acceptance.SelectedLoanOption.TotalRepayment),
		fmt.Sprintf("%d", acceptance.SelectedLoanOption.TermDays),
		string(acceptance.DisbursementMethod),
		bankAccount,
		acceptance.AcceptedAt,
		consts.EventAcceptanceConfirmed,
	}
}

// FormatFloat renders amounts with two decimal places for the ledger row and
// SMS parameters.
func FormatFloat(value float64) string {
	return fmt.Sprintf("%.2f", value)
}
