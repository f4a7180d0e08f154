package trustscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreProfileDefaultProfile(t *testing.T) {
	profile := SimulateUsageProfile("0812345678")
	score, factors := ScoreProfile(profile)

	// The simulated profile hits every positive band and no deduction, so the
	// raw sum overshoots and gets capped.
	assert.Equal(t, 100.0, score)
	assert.Contains(t, factors, "KYC verified")
	assert.Contains(t, factors, "Account 2+ years old")
	assert.NotContains(t, factors, "Recent disputes")
}

func TestScoreProfileBands(t *testing.T) {
	// A thin profile: no KYC, young account, low balances, low activity.
	thin := UsageProfile{
		AccountAgeDays:      90,
		CurrentBalance:      200,
		AvgMonthlyBalance:   150,
		MonthlyTransactions: 5,
		SuccessRate:         90,
		AppUsageDaysMonth:   4,
		LocationConsistency: 50,
	}
	score, factors := ScoreProfileBounds(t, thin)
	assert.Equal(t, 0.0, score)
	assert.Empty(t, factors)

	// Deductions can pull a weak profile to the floor but never below zero.
	risky := thin
	risky.FailedTransactionsRate = 10
	risky.Disputes6Months = 2
	score, factors = ScoreProfileBounds(t, risky)
	assert.Equal(t, 0.0, score)
	assert.Contains(t, factors, "Some failed transactions")
	assert.Contains(t, factors, "Recent disputes")
}

func ScoreProfileBounds(t *testing.T, p UsageProfile) (float64, []string) {
	t.Helper()
	score, factors := ScoreProfile(p)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 100.0)
	return score, factors
}

func TestGenerateLoanOptionsTiers(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		rate     float64
		termDays int
	}{
		{"top tier", 90, 2.5, 180},
		{"second tier", 75, 3.5, 120},
		{"third tier", 60, 5.0, 90},
		{"bottom tier", 45, 7.5, 60},
	}

	// A balance high enough that the tier cap, not the balance, limits the max.
	const balance = 100000.0

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := GenerateLoanOptions(tt.score, balance)
			assert.Len(t, options, 3)
			for _, option := range options {
				assert.Equal(t, tt.rate, option.InterestRatePercent)
				assert.Equal(t, tt.termDays, option.TermDays)
				assert.GreaterOrEqual(t, option.Amount, 500.0)
				assert.Greater(t, option.TotalRepayment, option.Amount)
			}
			// Ascending amounts at 25%, 50% and 100% of the tier max.
			assert.Less(t, options[0].Amount, options[1].Amount)
			assert.Less(t, options[1].Amount, options[2].Amount)
		})
	}
}

func TestGenerateLoanOptionsBelowMinimumScore(t *testing.T) {
	assert.Empty(t, GenerateLoanOptions(39.9, 5000))
	assert.Empty(t, GenerateLoanOptions(0, 5000))
}

func TestGenerateLoanOptionsBalanceCap(t *testing.T) {
	// Top tier score, tiny balance: the 3x-balance cap bites and the smallest
	// multiple falls under the 500 floor and is dropped.
	options := GenerateLoanOptions(90, 400)
	assert.Len(t, options, 2)
	assert.Equal(t, 600.0, options[0].Amount)
	assert.Equal(t, 1200.0, options[1].Amount)

	// Balance so low even the full max would be under 500 gets floored there.
	options = GenerateLoanOptions(90, 100)
	assert.Len(t, options, 1)
	assert.Equal(t, 500.0, options[0].Amount)
}

func TestGenerateLoanOptionsRepayment(t *testing.T) {
	options := GenerateLoanOptions(90, 100000)
	// Tier max 15000 at 2.5% interest plus the 2% processing fee.
	full := options[2]
	assert.Equal(t, 15000.0, full.Amount)
	assert.Equal(t, 15675.0, full.TotalRepayment)
}
