package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"policyparse/internal/domain"
)

func strp(s string) *string { return &s }

func completeRecord() *domain.PolicyData {
	return &domain.PolicyData{
		PolicyNumber:    strp("HOM-2024-789456"),
		Policyholder:    strp("Sarah Johnson"),
		PolicyType:      strp("Home Insurance"),
		EffectiveDate:   strp("01/15/2024"),
		ExpirationDate:  strp("01/15/2025"),
		CoverageAmount:  strp("450000"),
		Premium:         strp("1850.00"),
		TotalPremium:    strp("1975.50"),
		CoverageDetails: []string{"Fire and smoke damage"},
	}
}

func TestValidate_CompleteRecord(t *testing.T) {
	report := Validate(completeRecord())

	assert.True(t, report.IsComplete)
	assert.InDelta(t, 1.0, report.Confidence, 1e-9)
	require.Len(t, report.Groups, 3)
	for key, g := range report.Groups {
		assert.True(t, g.Complete, key)
		assert.Empty(t, g.Missing, key)
	}
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	data := completeRecord()
	data.Policyholder = nil
	data.PolicyType = nil

	report := Validate(data)

	assert.False(t, report.IsComplete)
	policy := report.Groups[GroupPolicyInfo]
	assert.False(t, policy.Complete)
	assert.Equal(t, []string{"policyholder", "policy_type"}, policy.Missing)

	assert.True(t, report.Groups[GroupFinancialInfo].Complete)
	assert.True(t, report.Groups[GroupCoverageInfo].Complete)

	// 7 of 9 required fields present.
	assert.InDelta(t, 7.0/9.0, report.Confidence, 1e-9)
}

func TestValidate_OptionalFieldsDoNotCount(t *testing.T) {
	data := completeRecord()
	withOptionals := Validate(data)

	data.Taxes = strp("95.50")
	data.Fees = strp("30.00")
	data.Deductible = strp("2500")
	data.PaymentFrequency = strp("Monthly")
	data.Copay = strp("25")
	withoutOptionals := Validate(data)

	assert.Equal(t, withOptionals.Confidence, withoutOptionals.Confidence)
	assert.True(t, withoutOptionals.IsComplete)
	assert.True(t, withoutOptionals.Groups[GroupFinancialInfo].Complete)
}

func TestValidate_EmptyRecord(t *testing.T) {
	report := Validate(&domain.PolicyData{})

	assert.False(t, report.IsComplete)
	assert.Zero(t, report.Confidence)
	assert.Equal(t,
		[]string{"policy_number", "policyholder", "policy_type"},
		report.Groups[GroupPolicyInfo].Missing)
	assert.Equal(t,
		[]string{"effective_date", "expiration_date", "coverage_amount", "premium", "total_premium"},
		report.Groups[GroupFinancialInfo].Missing)
	assert.Equal(t,
		[]string{"coverage_details"},
		report.Groups[GroupCoverageInfo].Missing)
}

func TestValidate_EmptyCoverageListIsAbsent(t *testing.T) {
	data := completeRecord()
	data.CoverageDetails = []string{}

	report := Validate(data)

	coverage := report.Groups[GroupCoverageInfo]
	assert.False(t, coverage.Complete)
	assert.Equal(t, []string{"coverage_details"}, coverage.Missing)
	assert.False(t, report.IsComplete)
}

func TestValidate_IsPure(t *testing.T) {
	data := completeRecord()
	first := Validate(data)
	second := Validate(data)
	assert.Equal(t, first, second)
}
