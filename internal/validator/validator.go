// Package validator computes presence-only completeness reports over
// extracted policy records.
package validator

import "policyparse/internal/domain"

// GroupReport is the completeness verdict for one field group.
type GroupReport struct {
	Complete bool     `json:"complete"`
	Missing  []string `json:"missing"`
}

// Report summarizes completeness across all groups. It is a derived view:
// recomputed on every call, never cached.
type Report struct {
	Groups     map[string]GroupReport `json:"groups"`
	IsComplete bool                   `json:"is_complete"`
	Confidence float64                `json:"confidence"`
}

// Validate checks every group's required fields against the record. A group
// is complete iff all its required fields are present; Missing lists the
// absent required names in registry order. Confidence is the fraction of
// required fields present overall. Value correctness is out of scope: a
// plausible but wrong policy number still counts as present.
func Validate(data *domain.PolicyData) *Report {
	report := &Report{Groups: make(map[string]GroupReport), IsComplete: true}

	var requiredTotal, requiredPresent int
	for _, g := range registryGroups {
		missing := []string{}
		for _, f := range g.fields {
			if !f.Required() {
				continue
			}
			requiredTotal++
			if f.Present(data) {
				requiredPresent++
			} else {
				missing = append(missing, f.Name())
			}
		}
		complete := len(missing) == 0
		if !complete {
			report.IsComplete = false
		}
		report.Groups[g.key] = GroupReport{Complete: complete, Missing: missing}
	}

	if requiredTotal > 0 {
		report.Confidence = float64(requiredPresent) / float64(requiredTotal)
	}
	return report
}
