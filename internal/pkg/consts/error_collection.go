package consts

import "github.com/workearnest-byte/MoMo-More/internal/pkg/models"

var (
	ErrorMsisdnFormatValidationFailed = &models.CustomError{
		Code:    "MOMOMORE_VALIDATION_MSISDN_FORMAT_INVALID",
		Message: "MSISDN must be 10 to 15 digits with an optional leading +",
	}
	ErrorConsentNotGiven = &models.CustomError{
		Code:    "MOMOMORE_VALIDATION_CONSENT_REQUIRED",
		Message: "User consent required",
	}
	ErrorBankAccountRequired = &models.CustomError{
		Code:    "MOMOMORE_VALIDATION_BANK_ACCOUNT_REQUIRED",
		Message: "bank account required",
	}
	ErrorUnknownDisbursementMethod = &models.CustomError{
		Code:    "MOMOMORE_VALIDATION_DISBURSEMENT_METHOD_INVALID",
		Message: "Disbursement method must be momo or bank",
	}
	ErrorOptionIndexOutOfRange = &models.CustomError{
		Code:    "MOMOMORE_VALIDATION_OPTION_INDEX_OUT_OF_RANGE",
		Message: "Selected loan option index is out of range",
	}
	ErrorTrustScoreGatewayFailed = &models.CustomError{
		Code:    "MOMOMORE_TRUSTSCORE_GATEWAY_REQUEST_FAILED",
		Message: "Trust score service unavailable, please try again",
	}
	ErrorTrustScoreGatewayTimeout = &models.CustomError{
		Code:    "MOMOMORE_TRUSTSCORE_GATEWAY_TIMEOUT",
		Message: "Trust score service timeout",
	}
	ErrorTrustScoreInvalidResponse = &models.CustomError{
		Code:    "MOMOMORE_TRUSTSCORE_GATEWAY_INVALID_RESPONSE",
		Message: "Trust score service returned an unreadable response",
	}
	ErrorNoTrustScoreOnRecord = &models.CustomError{
		Code:    "MOMOMORE_FLOW_NO_TRUSTSCORE_ON_RECORD",
		Message: "No trust score stored for this session",
	}
	ErrorNotApproved = &models.CustomError{
		Code:    "MOMOMORE_FLOW_NOT_APPROVED",
		Message: "Stored trust score is not approved for a loan",
	}
	ErrorAcceptanceInProgress = &models.CustomError{
		Code:    "MOMOMORE_FLOW_ACCEPTANCE_IN_PROGRESS",
		Message: "An acceptance is already being processed for this session",
	}
	ErrorDisbursementSimulationFailed = &models.CustomError{
		Code:    "MOMOMORE_ACCEPTANCE_DISBURSEMENT_FAILED",
		Message: "Disbursement could not be completed, please try again",
	}
	ErrorMissingBearerToken = &models.CustomError{
		Code:    "MOMOMORE_AUTH_BEARER_TOKEN_MISSING",
		Message: "Authorization bearer token required",
	}
	ErrorSessionStoreUnavailable = &models.CustomError{
		Code:    "MOMOMORE_INTERNAL_ERROR_SESSION_STORE",
		Message: "Session store unavailable",
	}
)
