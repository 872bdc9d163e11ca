package model

import "fmt"

// FindingKind names one kind of API surface difference.
type FindingKind string

const (
	// TypeRemoved: a type present before is gone after.
	TypeRemoved FindingKind = "type_removed"
	// TypeAdded: a new type appeared.
	TypeAdded FindingKind = "type_added"
	// MemberRemoved: a member of a shared type is gone.
	MemberRemoved FindingKind = "member_removed"
	// MemberAdded: a shared type gained a member.
	MemberAdded FindingKind = "member_added"
	// RequiredParamAdded: a shared member gained a parameter without default.
	RequiredParamAdded FindingKind = "required_param_added"
	// OptionalParamAdded: a shared member gained a parameter with a default.
	OptionalParamAdded FindingKind = "optional_param_added"
)

// Finding is one observed difference between the before and after surfaces.
type Finding struct {
	Kind      FindingKind    `json:"kind" yaml:"kind"`
	Type      string         `json:"type" yaml:"type"`
	Member    string         `json:"member,omitempty" yaml:"member,omitempty"`
	Parameter string         `json:"parameter,omitempty" yaml:"parameter,omitempty"`
	Severity  Classification `json:"severity" yaml:"severity"`
}

// Subject returns the dotted name the finding is about.
func (f Finding) Subject() string {
	subject := f.Type
	if f.Member != "" {
		subject += "." + f.Member
	}

	if f.Parameter != "" {
		subject += "(" + f.Parameter + ")"
	}

	return subject
}

func (f Finding) String() string {
	return fmt.Sprintf("%s %s [%s]", f.Kind, f.Subject(), f.Severity)
}

// FileError is a changed file whose symbols were left out of one snapshot.
type FileError struct {
	Path  Path   `json:"path" yaml:"path"`
	Side  string `json:"side" yaml:"side"`
	Error string `json:"error" yaml:"error"`
}

// Report is the outcome of one classification run.
type Report struct {
	Classification Classification `json:"classification" yaml:"classification"`
	Findings       []Finding      `json:"findings,omitempty" yaml:"findings,omitempty"`
	Changes        []ChangeRecord `json:"changes,omitempty" yaml:"changes,omitempty"`
	Skipped        []Path         `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Failures       []FileError    `json:"failures,omitempty" yaml:"failures,omitempty"`
	CurrentVersion string         `json:"current_version,omitempty" yaml:"current_version,omitempty"`
	NextVersion    string         `json:"next_version,omitempty" yaml:"next_version,omitempty"`
	// Before and After are the rendered surfaces, filled on request.
	Before []string `json:"before,omitempty" yaml:"before,omitempty"`
	After  []string `json:"after,omitempty" yaml:"after,omitempty"`
}
