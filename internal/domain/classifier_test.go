package domain_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/commitkind/commitkind/internal/domain"
	m "github.com/commitkind/commitkind/internal/model"
)

func typeX(members ...m.Member) m.TypeDecl {
	return m.MustTypeDecl("TypeX", members...)
}

func TestClassify_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		before m.Surface
		after  m.Surface
		want   m.Classification
	}{
		{
			name:   "unchanged surface is a fix",
			before: m.MustSurface(typeX(m.NewMember("foo", m.Required("a")))),
			after:  m.MustSurface(typeX(m.NewMember("foo", m.Required("a")))),
			want:   m.Fix,
		},
		{
			name:   "new member is a feature",
			before: m.MustSurface(typeX(m.NewMember("foo", m.Required("a")))),
			after: m.MustSurface(typeX(
				m.NewMember("foo", m.Required("a")),
				m.NewMember("bar", m.Required("b")),
			)),
			want: m.Feat,
		},
		{
			name:   "new required parameter is major",
			before: m.MustSurface(typeX(m.NewMember("foo", m.Required("a")))),
			after:  m.MustSurface(typeX(m.NewMember("foo", m.Required("a"), m.Required("b")))),
			want:   m.Major,
		},
		{
			name:   "removed type is major",
			before: m.MustSurface(m.MustTypeDecl("TypeX"), m.MustTypeDecl("TypeY")),
			after:  m.MustSurface(m.MustTypeDecl("TypeY")),
			want:   m.Major,
		},
		{
			name:   "new optional parameter is a feature",
			before: m.MustSurface(typeX(m.NewMember("foo", m.Required("a")))),
			after:  m.MustSurface(typeX(m.NewMember("foo", m.Required("a"), m.Optional("b")))),
			want:   m.Feat,
		},
		{
			name:   "new type is a feature",
			before: m.MustSurface(typeX()),
			after:  m.MustSurface(typeX(), m.MustTypeDecl("TypeY")),
			want:   m.Feat,
		},
		{
			name:   "removed member is major",
			before: m.MustSurface(typeX(m.NewMember("foo"), m.NewMember("bar"))),
			after:  m.MustSurface(typeX(m.NewMember("foo"))),
			want:   m.Major,
		},
		{
			name:   "empty surfaces are a fix",
			before: m.MustSurface(),
			after:  m.MustSurface(),
			want:   m.Fix,
		},
		{
			name:   "zero surfaces are a fix",
			before: m.Surface{},
			after:  m.Surface{},
			want:   m.Fix,
		},
		{
			name:   "renamed parameter at the same position is a fix",
			before: m.MustSurface(typeX(m.NewMember("foo", m.Required("a")))),
			after:  m.MustSurface(typeX(m.NewMember("foo", m.Required("renamed")))),
			want:   m.Fix,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Classify(tt.before, tt.after))
		})
	}
}

// Parameters removed from a signature are not detected. This pins the
// current rule so a change to it is deliberate.
func TestClassify_ParameterRemovalIsNotDetected(t *testing.T) {
	before := m.MustSurface(typeX(m.NewMember("foo", m.Required("a"), m.Optional("b"))))
	after := m.MustSurface(typeX(m.NewMember("foo", m.Required("a"))))

	assert.Equal(t, m.Fix, domain.Classify(before, after))
	assert.Empty(t, domain.Explain(before, after))

	requiredRemoved := m.MustSurface(typeX(m.NewMember("foo")))
	assert.Equal(t, m.Fix, domain.Classify(before, requiredRemoved))
}

func TestClassify_EqualSurfacesAreFix(t *testing.T) {
	for _, surface := range sampleSurfaces() {
		assert.Equal(t, m.Fix, domain.Classify(surface, surface))
	}
}

func TestClassify_Idempotent(t *testing.T) {
	surfaces := sampleSurfaces()

	for _, before := range surfaces {
		for _, after := range surfaces {
			first := domain.Classify(before, after)
			second := domain.Classify(before, after)
			assert.Equal(t, first, second)
		}
	}
}

func TestClassify_DoesNotMutateInputs(t *testing.T) {
	before := m.MustSurface(typeX(m.NewMember("foo", m.Required("a"))), m.MustTypeDecl("Gone"))
	after := m.MustSurface(typeX(m.NewMember("foo", m.Required("a"), m.Required("b"))))

	beforeLines := before.Lines()
	afterLines := after.Lines()

	domain.Classify(before, after)
	domain.Explain(before, after)

	assert.Equal(t, beforeLines, before.Lines())
	assert.Equal(t, afterLines, after.Lines())
}

func TestClassify_AdditiveChangesAreMonotonic(t *testing.T) {
	before := m.MustSurface(typeX(m.NewMember("foo", m.Required("a"))))

	// Each step adds one more additive change to the previous "after".
	steps := [][]m.TypeDecl{
		{typeX(m.NewMember("foo", m.Required("a")))},
		{typeX(m.NewMember("foo", m.Required("a"), m.Optional("b")))},
		{typeX(m.NewMember("foo", m.Required("a"), m.Optional("b")), m.NewMember("bar"))},
		{typeX(m.NewMember("foo", m.Required("a"), m.Optional("b")), m.NewMember("bar")), m.MustTypeDecl("TypeY")},
		{typeX(m.NewMember("foo", m.Required("a"), m.Optional("b"), m.Required("c")), m.NewMember("bar")), m.MustTypeDecl("TypeY")},
	}

	previous := m.Fix

	for i, step := range steps {
		got := domain.Classify(before, m.MustSurface(step...))
		assert.GreaterOrEqual(t, int(got), int(previous), "step %d lowered the classification", i)
		previous = got
	}

	assert.Equal(t, m.Major, previous)
}

func TestClassify_RemovalAbsorbsAdditions(t *testing.T) {
	before := m.MustSurface(
		typeX(m.NewMember("foo", m.Required("a")), m.NewMember("old")),
		m.MustTypeDecl("TypeZ"),
	)

	tests := []struct {
		name  string
		after m.Surface
	}{
		{
			name: "member removed alongside additions",
			after: m.MustSurface(
				typeX(m.NewMember("foo", m.Required("a"), m.Optional("b")), m.NewMember("new")),
				m.MustTypeDecl("TypeZ"),
				m.MustTypeDecl("TypeNew"),
			),
		},
		{
			name: "type removed alongside additions",
			after: m.MustSurface(
				typeX(m.NewMember("foo", m.Required("a"), m.Optional("b")), m.NewMember("old"), m.NewMember("new")),
				m.MustTypeDecl("TypeNew"),
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, m.Major, domain.Classify(before, tt.after))
		})
	}
}

func TestClassify_DefaultParameterRule(t *testing.T) {
	before := m.MustSurface(
		typeX(m.NewMember("foo", m.Required("a"))),
		m.MustTypeDecl("TypeY", m.NewMember("bar")),
	)

	optional := m.MustSurface(
		typeX(m.NewMember("foo", m.Required("a"), m.Optional("b"), m.Optional("c"))),
		m.MustTypeDecl("TypeY", m.NewMember("bar")),
	)
	assert.Equal(t, m.Feat, domain.Classify(before, optional))

	// One required addition anywhere decides the whole run.
	required := m.MustSurface(
		typeX(m.NewMember("foo", m.Required("a"), m.Optional("b"))),
		m.MustTypeDecl("TypeY", m.NewMember("bar", m.Required("x"))),
	)
	assert.Equal(t, m.Major, domain.Classify(before, required))
}

func TestExplain_Findings(t *testing.T) {
	before := m.MustSurface(
		typeX(m.NewMember("foo", m.Required("a")), m.NewMember("gone")),
		m.MustTypeDecl("Old"),
	)
	after := m.MustSurface(
		typeX(m.NewMember("foo", m.Required("a"), m.Optional("b"), m.Required("c")), m.NewMember("fresh")),
		m.MustTypeDecl("New"),
	)

	findings := domain.Explain(before, after)

	assert.Equal(t, []m.Finding{
		{Kind: m.TypeRemoved, Type: "Old", Severity: m.Major},
		{Kind: m.TypeAdded, Type: "New", Severity: m.Feat},
		{Kind: m.MemberRemoved, Type: "TypeX", Member: "gone", Severity: m.Major},
		{Kind: m.MemberAdded, Type: "TypeX", Member: "fresh", Severity: m.Feat},
		{Kind: m.OptionalParamAdded, Type: "TypeX", Member: "foo", Parameter: "b", Severity: m.Feat},
		{Kind: m.RequiredParamAdded, Type: "TypeX", Member: "foo", Parameter: "c", Severity: m.Major},
	}, findings)
}

func TestExplain_VerdictMatchesClassify(t *testing.T) {
	surfaces := sampleSurfaces()

	for i, before := range surfaces {
		for j, after := range surfaces {
			t.Run(fmt.Sprintf("%d->%d", i, j), func(t *testing.T) {
				assert.Equal(t, domain.Classify(before, after), domain.Verdict(domain.Explain(before, after)))
			})
		}
	}
}

func TestVerdict_Empty(t *testing.T) {
	assert.Equal(t, m.Fix, domain.Verdict(nil))
}

func sampleSurfaces() []m.Surface {
	decls := [][]m.TypeDecl{
		nil,
		{typeX()},
		{typeX(m.NewMember("foo", m.Required("a")))},
		{typeX(m.NewMember("foo", m.Required("a"), m.Optional("b")))},
		{typeX(m.NewMember("foo", m.Required("a"), m.Required("b")))},
		{typeX(m.NewMember("foo", m.Required("a")), m.NewMember("bar"))},
		{typeX(m.NewMember("foo", m.Required("a"))), m.MustTypeDecl("TypeY", m.NewMember("baz", m.Optional("k")))},
		{m.MustTypeDecl("TypeY", m.NewMember("baz"))},
	}

	surfaces := make([]m.Surface, 0, len(decls))
	for _, d := range decls {
		surface, err := m.NewSurface(d...)
		if err != nil {
			panic(err)
		}

		surfaces = append(surfaces, surface)
	}

	return surfaces
}
