package validator

import "policyparse/internal/extractor"

// Group keys, re-exported from the field registry for report consumers.
const (
	GroupPolicyInfo    = extractor.GroupPolicyInfo
	GroupFinancialInfo = extractor.GroupFinancialInfo
	GroupCoverageInfo  = extractor.GroupCoverageInfo
)

type fieldGroup struct {
	key    string
	fields []*extractor.FieldDef
}

// registryGroups is the field registry partitioned by completeness group,
// in registry order. Built once; the registry is immutable.
var registryGroups = buildGroups(extractor.DefaultRegistry())

func buildGroups(reg *extractor.Registry) []fieldGroup {
	var ordered []fieldGroup
	index := make(map[string]int)
	for _, name := range reg.FieldNames() {
		f := reg.Lookup(name)
		i, ok := index[f.Group()]
		if !ok {
			i = len(ordered)
			index[f.Group()] = i
			ordered = append(ordered, fieldGroup{key: f.Group()})
		}
		ordered[i].fields = append(ordered[i].fields, f)
	}
	return ordered
}
