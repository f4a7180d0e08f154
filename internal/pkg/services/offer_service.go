package services

import (
	"strings"

	"github.com/workearnest-byte/MoMo-More/internal/pkg/consts"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/models"
)

// SelectOption picks one loan option by index from the stored offer list.
func SelectOption(options []models.LoanOption, index int) (models.LoanOption, error) {
	if index < 0 || index >= len(options) {
		return models.LoanOption{}, consts.ErrorOptionIndexOutOfRange
	}
	return options[index], nil
}

// ValidateDisbursement checks the disbursement choice. Bank transfers need a
// non-blank account; mobile wallet payouts go to the applicant's own MSISDN
// and need nothing extra.
func ValidateDisbursement(method string, bankAccount string) (models.DisbursementMethod, error) {
	switch models.DisbursementMethod(method) {
	case models.DisbursementMoMo:
		return models.DisbursementMoMo, nil
	case models.DisbursementBank:
		if strings.TrimSpace(bankAccount) == "" {
			return "", consts.ErrorBankAccountRequired
		}
		return models.DisbursementBank, nil
	default:
		return "", consts.ErrorUnknownDisbursementMethod
	}
}
