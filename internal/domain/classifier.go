package domain

import (
	m "github.com/commitkind/commitkind/internal/model"
)

// Classify compares the surface before and after a change and returns its
// severity. Removing a type or a member, or adding a parameter without a
// default, is MAJOR. Adding a type, a member or a defaulted parameter is
// FEAT. Anything else is FIX.
//
// Parameters that disappear from a signature are not detected: shrinking a
// signature classifies as FIX.
func Classify(before, after m.Surface) m.Classification {
	result := m.Fix

	for _, name := range before.TypeNames() {
		if _, ok := after.Type(name); !ok {
			return m.Major
		}
	}

	for _, name := range after.TypeNames() {
		if _, ok := before.Type(name); !ok {
			result = result.Max(m.Feat)
		}
	}

	for _, name := range before.TypeNames() {
		oldType, _ := before.Type(name)
		newType, _ := after.Type(name)

		severity := classifyType(oldType, newType)
		if severity == m.Major {
			return m.Major
		}

		result = result.Max(severity)
	}

	return result
}

func classifyType(before, after m.TypeDecl) m.Classification {
	result := m.Fix

	for _, name := range before.MemberNames() {
		if _, ok := after.Member(name); !ok {
			return m.Major
		}
	}

	for _, name := range after.MemberNames() {
		if _, ok := before.Member(name); !ok {
			result = result.Max(m.Feat)
		}
	}

	for _, name := range before.MemberNames() {
		oldMember, _ := before.Member(name)
		newMember, _ := after.Member(name)

		for _, param := range addedParams(oldMember.Signature, newMember.Signature) {
			if !param.HasDefault {
				return m.Major
			}

			result = result.Max(m.Feat)
		}
	}

	return result
}

// addedParams returns the parameters of after positioned beyond the end of
// before.
func addedParams(before, after m.Signature) []m.Parameter {
	if after.Len() <= before.Len() {
		return nil
	}

	return after.Params()[before.Len():]
}

// Explain lists every difference between the two surfaces, ordered by type,
// member and position. The highest finding severity always equals Classify.
func Explain(before, after m.Surface) []m.Finding {
	var findings []m.Finding

	for _, name := range before.TypeNames() {
		if _, ok := after.Type(name); !ok {
			findings = append(findings, m.Finding{Kind: m.TypeRemoved, Type: name, Severity: m.Major})
		}
	}

	for _, name := range after.TypeNames() {
		if _, ok := before.Type(name); !ok {
			findings = append(findings, m.Finding{Kind: m.TypeAdded, Type: name, Severity: m.Feat})
		}
	}

	for _, name := range before.TypeNames() {
		newType, ok := after.Type(name)
		if !ok {
			continue
		}

		oldType, _ := before.Type(name)
		findings = append(findings, explainType(oldType, newType)...)
	}

	return findings
}

func explainType(before, after m.TypeDecl) []m.Finding {
	var findings []m.Finding

	for _, name := range before.MemberNames() {
		if _, ok := after.Member(name); !ok {
			findings = append(findings, m.Finding{Kind: m.MemberRemoved, Type: before.Name, Member: name, Severity: m.Major})
		}
	}

	for _, name := range after.MemberNames() {
		if _, ok := before.Member(name); !ok {
			findings = append(findings, m.Finding{Kind: m.MemberAdded, Type: before.Name, Member: name, Severity: m.Feat})
		}
	}

	for _, name := range before.MemberNames() {
		newMember, ok := after.Member(name)
		if !ok {
			continue
		}

		oldMember, _ := before.Member(name)

		for _, param := range addedParams(oldMember.Signature, newMember.Signature) {
			finding := m.Finding{
				Kind:      m.OptionalParamAdded,
				Type:      before.Name,
				Member:    name,
				Parameter: param.Name,
				Severity:  m.Feat,
			}

			if !param.HasDefault {
				finding.Kind = m.RequiredParamAdded
				finding.Severity = m.Major
			}

			findings = append(findings, finding)
		}
	}

	return findings
}

// Verdict folds findings into one classification.
func Verdict(findings []m.Finding) m.Classification {
	result := m.Fix
	for _, finding := range findings {
		result = result.Max(finding.Severity)
	}

	return result
}
