package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotBlank(t *testing.T) {
	assert.True(t, NotBlank("hello"))
	assert.False(t, NotBlank(""))
	assert.False(t, NotBlank("   \t"))
}

func TestMinMaxRunes(t *testing.T) {
	assert.True(t, MinRunes("abc", 3))
	assert.False(t, MinRunes("ab", 3))
	assert.True(t, MaxRunes("abc", 3))
	assert.False(t, MaxRunes("abcd", 3))
	// rune-aware, not byte-aware
	assert.True(t, MinRunes("äöå", 3))
	assert.True(t, MaxRunes("äöå", 3))
}

func TestIn(t *testing.T) {
	assert.True(t, In("b", "a", "b", "c"))
	assert.False(t, In("z", "a", "b", "c"))
	assert.True(t, In(2, 1, 2, 3))
}

func TestIsEmail(t *testing.T) {
	valid := []string{"tess@example.com", "a.b+c@sub.domain.org"}
	invalid := []string{"", "tess", "tess@", "@example.com", "a b@c.com"}

	for _, e := range valid {
		assert.True(t, IsEmail(e), e)
	}
	for _, e := range invalid {
		assert.False(t, IsEmail(e), e)
	}
}

func TestUnique(t *testing.T) {
	assert.True(t, Unique([]string{"FIN", "JPN"}))
	assert.False(t, Unique([]string{"FIN", "FIN"}))
	assert.True(t, Unique(nil))
}

func TestValidatorAccumulation(t *testing.T) {
	v := New()
	assert.True(t, v.Valid())

	v.Check(false, "email", "email is invalid")
	v.Check(false, "email", "second message is dropped")
	v.Check(true, "password", "never recorded")

	assert.False(t, v.Valid())
	assert.Equal(t, map[string]string{"email": "email is invalid"}, v.Errors)

	ve := NewValidationError("Validation failed", v.Errors)
	assert.Equal(t, "Validation failed", ve.Error())
	assert.Equal(t, v.Errors, ve.Fields)
}
