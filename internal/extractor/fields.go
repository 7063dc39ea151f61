package extractor

import "policyparse/internal/domain"

// Completeness group names. Every field belongs to exactly one group.
const (
	GroupPolicyInfo    = "policy_info"
	GroupFinancialInfo = "financial_info"
	GroupCoverageInfo  = "coverage_info"
)

// Shared pattern fragments. The currency marker is optional on every
// monetary label; the numeric group captures digits, thousands separators,
// and an optional two-digit decimal part.
const (
	currencyExpr = `(?:USD|INR|\$|₹|Rs\.?)?`
	numericExpr  = `([\d,]+(?:\.\d{2})?)`
	dateExpr     = `(\d{2}[/-]\d{2}[/-]\d{4})`
)

func moneyPattern(label string) Pattern {
	return NewPattern(`(?i)`+label+`\s*:?\s*`+currencyExpr+`\s*`+numericExpr, 1)
}

func datePattern(label string) Pattern {
	return NewPattern(`(?i)`+label+`\s*:?\s*`+dateExpr, 1)
}

func strPresent(get func(*domain.PolicyData) *string) func(*domain.PolicyData) bool {
	return func(d *domain.PolicyData) bool { return get(d) != nil }
}

// DefaultRegistry builds the closed field registry. Pattern order within a
// field is significant: most-specific labels come first so a looser pattern
// never overrides the intended one.
func DefaultRegistry() *Registry {
	return newRegistry([]FieldDef{
		{
			name:  "policy_number",
			group: GroupPolicyInfo,
			patterns: []Pattern{
				NewPattern(`(?i)Policy\s+(?:Number|No\.?|#)\s*:?\s*([A-Z0-9][A-Z0-9-/\\]+)`, 1),
			},
			proc:     ProcessorIdentity,
			required: true,
			assign:   func(d *domain.PolicyData, v string) { d.PolicyNumber = &v },
			present:  strPresent(func(d *domain.PolicyData) *string { return d.PolicyNumber }),
		},
		{
			name:  "policyholder",
			group: GroupPolicyInfo,
			patterns: []Pattern{
				NewPattern(`(?i)Policyholder(?:\s+Name)?:\s*([A-Za-z\s]+?)(?:\n|$)`, 1),
			},
			proc:     ProcessorIdentity,
			required: true,
			assign:   func(d *domain.PolicyData, v string) { d.Policyholder = &v },
			present:  strPresent(func(d *domain.PolicyData) *string { return d.Policyholder }),
		},
		{
			name:  "policy_type",
			group: GroupPolicyInfo,
			patterns: []Pattern{
				NewPattern(`(?i)Policy\s+Type:\s*([A-Za-z\s]+?)(?:\n|$)`, 1),
			},
			proc:     ProcessorIdentity,
			required: true,
			assign:   func(d *domain.PolicyData, v string) { d.PolicyType = &v },
			present:  strPresent(func(d *domain.PolicyData) *string { return d.PolicyType }),
		},
		{
			name:  "effective_date",
			group: GroupFinancialInfo,
			patterns: []Pattern{
				datePattern(`(?:Effective|Start|Commencement|From)\s+Date`),
				datePattern(`Policy\s+(?:Start|Effective)\s+Date`),
				datePattern(`(?:Valid|Coverage)\s+From`),
			},
			proc:     ProcessorDateNormalize,
			required: true,
			assign:   func(d *domain.PolicyData, v string) { d.EffectiveDate = &v },
			present:  strPresent(func(d *domain.PolicyData) *string { return d.EffectiveDate }),
		},
		{
			name:  "expiration_date",
			group: GroupFinancialInfo,
			patterns: []Pattern{
				datePattern(`(?:Expiration|Expiry|End|To)\s+Date`),
				datePattern(`Policy\s+(?:End|Expiry)\s+Date`),
				datePattern(`(?:Valid|Coverage)\s+(?:Until|To)`),
			},
			proc:     ProcessorDateNormalize,
			required: true,
			assign:   func(d *domain.PolicyData, v string) { d.ExpirationDate = &v },
			present:  strPresent(func(d *domain.PolicyData) *string { return d.ExpirationDate }),
		},
		{
			name:  "coverage_amount",
			group: GroupFinancialInfo,
			patterns: []Pattern{
				moneyPattern(`(?:Coverage|Sum)\s+(?:Amount|Insured)`),
				moneyPattern(`Sum\s+Insured`),
				moneyPattern(`Insured\s+(?:Amount|Value)`),
			},
			proc:     ProcessorNumericClean,
			required: true,
			assign:   func(d *domain.PolicyData, v string) { d.CoverageAmount = &v },
			present:  strPresent(func(d *domain.PolicyData) *string { return d.CoverageAmount }),
		},
		{
			name:  "premium",
			group: GroupFinancialInfo,
			patterns: []Pattern{
				moneyPattern(`(?:Base|Basic|Net)\s+Premium`),
				moneyPattern(`Premium`),
				moneyPattern(`(?:Monthly|Annual|Yearly)\s+Premium`),
			},
			proc:     ProcessorNumericClean,
			required: true,
			assign:   func(d *domain.PolicyData, v string) { d.Premium = &v },
			present:  strPresent(func(d *domain.PolicyData) *string { return d.Premium }),
		},
		{
			name:  "total_premium",
			group: GroupFinancialInfo,
			patterns: []Pattern{
				moneyPattern(`Total\s+Premium`),
				moneyPattern(`(?:Gross|Final)\s+Premium`),
				moneyPattern(`Premium\s+(?:Total|Amount)`),
			},
			proc:     ProcessorNumericClean,
			required: true,
			assign:   func(d *domain.PolicyData, v string) { d.TotalPremium = &v },
			present:  strPresent(func(d *domain.PolicyData) *string { return d.TotalPremium }),
		},
		{
			name:  "taxes",
			group: GroupFinancialInfo,
			patterns: []Pattern{
				moneyPattern(`(?:GST|Tax|Service\s+Tax)\s*(?:Amount)?`),
				moneyPattern(`Tax(?:es)?`),
				moneyPattern(`(?:Policy|Insurance)\s+Tax`),
				moneyPattern(`GST\s*@?\s*\d+%?`),
			},
			proc:    ProcessorNumericClean,
			assign:  func(d *domain.PolicyData, v string) { d.Taxes = &v },
			present: strPresent(func(d *domain.PolicyData) *string { return d.Taxes }),
		},
		{
			name:  "fees",
			group: GroupFinancialInfo,
			patterns: []Pattern{
				moneyPattern(`(?:Administrative|Processing|Service)\s+Fee`),
				moneyPattern(`Fee(?:s)?`),
				moneyPattern(`(?:Stamp|Policy)\s+Fee`),
			},
			proc:    ProcessorNumericClean,
			assign:  func(d *domain.PolicyData, v string) { d.Fees = &v },
			present: strPresent(func(d *domain.PolicyData) *string { return d.Fees }),
		},
		{
			name:  "deductible",
			group: GroupFinancialInfo,
			patterns: []Pattern{
				moneyPattern(`Deductible\s*(?:Amount)?`),
				moneyPattern(`(?:Standard|Basic)\s+Deductible`),
				moneyPattern(`(?:Excess|Co-payment)`),
			},
			proc:    ProcessorNumericClean,
			assign:  func(d *domain.PolicyData, v string) { d.Deductible = &v },
			present: strPresent(func(d *domain.PolicyData) *string { return d.Deductible }),
		},
		{
			name:  "payment_frequency",
			group: GroupFinancialInfo,
			patterns: []Pattern{
				NewPattern(`(?i)Payment\s+Frequency\s*:?\s*((?:Monthly|Quarterly|Annual|Yearly|Bi-?annual|Semi-?annual))`, 1),
				NewPattern(`(?i)Billed\s+(Monthly|Quarterly|Annual|Yearly)`, 1),
				NewPattern(`(?i)(Monthly|Quarterly|Annual|Yearly)\s+(?:Payment|Billing)`, 1),
			},
			proc:    ProcessorIdentity,
			assign:  func(d *domain.PolicyData, v string) { d.PaymentFrequency = &v },
			present: strPresent(func(d *domain.PolicyData) *string { return d.PaymentFrequency }),
		},
		{
			name:  "copay",
			group: GroupFinancialInfo,
			patterns: []Pattern{
				NewPattern(`(?i)Co-?pay\s*:?\s*\$?([\d,]+(?:\.\d{2})?)`, 1),
				NewPattern(`(?i)Copayment\s*:?\s*\$?([\d,]+(?:\.\d{2})?)`, 1),
			},
			proc:    ProcessorNumericClean,
			assign:  func(d *domain.PolicyData, v string) { d.Copay = &v },
			present: strPresent(func(d *domain.PolicyData) *string { return d.Copay }),
		},
		{
			name:  "coverage_details",
			group: GroupCoverageInfo,
			patterns: []Pattern{
				NewPattern(`(?is)Coverage\s+Details:\s*(.*?)(?:\n\n|\z)`, 1),
			},
			proc:     ProcessorListCollect,
			required: true,
			multi:    true,
			assignList: func(d *domain.PolicyData, items []string) {
				d.CoverageDetails = items
			},
			present: func(d *domain.PolicyData) bool { return len(d.CoverageDetails) > 0 },
		},
	})
}
