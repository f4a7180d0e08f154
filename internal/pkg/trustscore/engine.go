// Package trustscore computes a creditworthiness score from mobile-money
// usage data and turns it into tiered loan offers. In production the usage
// profile comes from the wallet provider's APIs; here the profile is
// simulated, which is enough to drive the flow end to end.
package trustscore

import (
	"math"

	"github.com/workearnest-byte/MoMo-More/internal/pkg/models"
)

const MinimumApprovalScore = 40.0

// DataSources lists what the engine inspects, echoed back to the applicant
// for transparency.
var DataSources = []string{
	"MTN Account Status",
	"Transaction History (90 days)",
	"Balance Patterns",
	"Payment Behavior",
	"App Usage Analytics",
	"Risk Assessment",
}

// UsageProfile is the wallet-usage summary the score is computed from.
type UsageProfile struct {
	AccountAgeDays         int
	KYCVerified            bool
	CurrentBalance         float64
	AvgMonthlyBalance      float64
	MonthlyTransactions    int
	SuccessRate            float64
	BillPaymentsMonthly    int
	AppUsageDaysMonth      int
	FailedTransactionsRate float64
	Disputes6Months        int
	LocationConsistency    float64
}

// SimulateUsageProfile stands in for the wallet provider's data collection.
// The profile is fixed per environment rather than per subscriber; a real
// integration replaces this wholesale.
func SimulateUsageProfile(msisdn string) UsageProfile {
	return UsageProfile{
		AccountAgeDays:         850,
		KYCVerified:            true,
		CurrentBalance:         4200.50,
		AvgMonthlyBalance:      3100.00,
		MonthlyTransactions:    42,
		SuccessRate:            98.5,
		BillPaymentsMonthly:    3,
		AppUsageDaysMonth:      26,
		FailedTransactionsRate: 1.5,
		Disputes6Months:        0,
		LocationConsistency:    94.2,
	}
}

// ScoreProfile computes the 0-100 trust score and the list of contributing
// factors. Weighting: account health 25%, financial behavior 30%, transaction
// patterns 25%, engagement 15%, risk deductions 5%.
func ScoreProfile(p UsageProfile) (float64, []string) {
	score := 0.0
	var factors []string

	// Account health
	if p.KYCVerified {
		score += 25
		factors = append(factors, "KYC verified")
	}
	if p.AccountAgeDays > 730 {
		score += 20
		factors = append(factors, "Account 2+ years old")
	} else if p.AccountAgeDays > 365 {
		score += 15
		factors = append(factors, "Account 1+ year old")
	}

	// Financial behavior
	if p.CurrentBalance > 3000 {
		score += 15
		factors = append(factors, "Strong current balance")
	} else if p.CurrentBalance > 1000 {
		score += 10
		factors = append(factors, "Good current balance")
	}
	if p.AvgMonthlyBalance > 2000 {
		score += 15
		factors = append(factors, "Consistent balance management")
	} else if p.AvgMonthlyBalance > 800 {
		score += 10
		factors = append(factors, "Reasonable balance management")
	}

	// Transaction patterns
	if p.MonthlyTransactions > 30 {
		score += 15
		factors = append(factors, "High transaction activity")
	} else if p.MonthlyTransactions > 15 {
		score += 10
		factors = append(factors, "Regular transaction activity")
	}
	if p.SuccessRate > 97 {
		score += 10
		factors = append(factors, "Excellent transaction success rate")
	} else if p.SuccessRate > 95 {
		score += 8
		factors = append(factors, "Good transaction success rate")
	}

	// Engagement
	if p.AppUsageDaysMonth > 20 {
		score += 8
		factors = append(factors, "Very active app usage")
	} else if p.AppUsageDaysMonth > 10 {
		score += 5
		factors = append(factors, "Regular app usage")
	}
	if p.LocationConsistency > 90 {
		score += 7
		factors = append(factors, "Consistent location patterns")
	}

	// Risk deductions
	if p.FailedTransactionsRate > 3 {
		score -= 5
		factors = append(factors, "Some failed transactions")
	}
	if p.Disputes6Months > 0 {
		score -= 10
		factors = append(factors, "Recent disputes")
	}

	return math.Max(math.Min(score, 100), 0), factors
}

// GenerateLoanOptions builds the tiered offer list. Below the minimum score
// the list is empty, which downstream reads as not approved.
func GenerateLoanOptions(trustScore float64, balance float64) []models.LoanOption {
	if trustScore < MinimumApprovalScore {
		return nil
	}

	var maxAmount, interestRate float64
	var termDays int
	switch {
	case trustScore >= 85:
		maxAmount, interestRate, termDays = 15000, 2.5, 180
	case trustScore >= 70:
		maxAmount, interestRate, termDays = 10000, 3.5, 120
	case trustScore >= 55:
		maxAmount, interestRate, termDays = 5000, 5.0, 90
	default:
		maxAmount, interestRate, termDays = 2000, 7.5, 60
	}

	// Cap to repayment ability, floor at the minimum viable loan.
	balanceLimit := math.Min(balance*3, maxAmount)
	finalMax := math.Max(math.Min(balanceLimit, maxAmount), 500)

	var options []models.LoanOption
	for _, multiplier := range []float64{0.25, 0.5, 1.0} {
		amount := finalMax * multiplier
		if amount < 500 {
			continue
		}
		totalInterest := amount * (interestRate / 100)
		processingFee := amount * 0.02
		options = append(options, models.LoanOption{
			Amount:              round2(amount),
			InterestRatePercent: interestRate,
			TotalRepayment:      round2(amount + totalInterest + processingFee),
			TermDays:            termDays,
		})
	}

	return options
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
