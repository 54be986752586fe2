package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRef_WellFormedUnchanged(t *testing.T) {
	assert.Equal(t, "33402:pk:leg-day", NormalizeRef("33402:pk:leg-day"))
}

func TestNormalizeRef_CollapsesDoubleWrap(t *testing.T) {
	assert.Equal(t, "33402:pk:leg-day", NormalizeRef("33402:pk:33402:pk:leg-day"))
}

func TestNormalizeRef_CollapsesTripleWrap(t *testing.T) {
	assert.Equal(t, "33402:pk:leg-day", NormalizeRef("33402:pk:33402:pk:33402:pk:leg-day"))
}

func TestNormalizeRef_Idempotent(t *testing.T) {
	inputs := []string{
		"33402:pk:leg-day",
		"33402:pk:33402:pk:leg-day",
		"not a reference",
		"",
		"a:b",
		"a:b:c:d:e", // five parts, but no duplicated prefix
		"::",
		"33402:pk:33402:qk:leg-day", // author differs, no wrap
	}
	for _, in := range inputs {
		once := NormalizeRef(in)
		assert.Equal(t, once, NormalizeRef(once), "normalize must be idempotent for %q", in)
	}
}

func TestNormalizeRef_UnparseableUnchanged(t *testing.T) {
	assert.Equal(t, "", NormalizeRef(""))
	assert.Equal(t, "leg-day", NormalizeRef("leg-day"))
	assert.Equal(t, "a:b:c:d:e", NormalizeRef("a:b:c:d:e"))
}

func TestNormalizeRef_MixedPrefixNotStripped(t *testing.T) {
	// Looks wrapped but the repeated prefix does not match; leave it alone.
	assert.Equal(t, "a:b:c:b:e", NormalizeRef("a:b:c:b:e"))
}

func TestRefEqual_SeesThroughWrapping(t *testing.T) {
	assert.True(t, RefEqual("33402:pk:leg-day", "33402:pk:33402:pk:leg-day"))
	assert.False(t, RefEqual("33402:pk:leg-day", "33402:pk:push-day"))
}

func TestParseRef(t *testing.T) {
	ref, err := ParseRef("33402:pk:leg-day")
	require.NoError(t, err)
	assert.Equal(t, PlanReference{Kind: "33402", AuthorID: "pk", Slug: "leg-day"}, ref)
	assert.Equal(t, "33402:pk:leg-day", ref.String())
}

func TestParseRef_NormalizesFirst(t *testing.T) {
	ref, err := ParseRef("33402:pk:33402:pk:leg-day")
	require.NoError(t, err)
	assert.Equal(t, "33402:pk:leg-day", ref.String())
}

func TestParseRef_Invalid(t *testing.T) {
	for _, in := range []string{"", "leg-day", "a:b", "a::c", ":b:c"} {
		_, err := ParseRef(in)
		assert.Error(t, err, "expected parse failure for %q", in)
	}
}
