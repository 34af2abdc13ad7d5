package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	q := quote("ab")
	for _, tc := range []struct {
		name string
		a, b Value
		want bool
	}{
		{"same atom", Atom('a'), Atom('a'), true},
		{"different atoms", Atom('a'), Atom('b'), false},
		{"same number", num(42), num(42), true},
		{"distinct big numbers", bignum("123456789012345678901234567890"), bignum("123456789012345678901234567890"), true},
		{"different numbers", num(42), num(-42), false},
		{"digit atom is not number", Atom('4'), num(4), false},
		{"same quotation", q, q, true},
		{"similar quotations", q, quote("ab"), false},
		{"quotation is not atom", quote("a"), Atom('a'), false},
		{"nil", nil, nil, false},
		{"zero number", Number{}, Number{}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Equal(tc.a, tc.b))
			assert.Equal(t, tc.want, Equal(tc.b, tc.a), "expected equality to be symmetric")
		})
	}
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "🙆", OK.String())
	assert.Equal(t, "-7", num(-7).String())
	assert.Equal(t, "0", Number{}.String())
	assert.Equal(t, "[]", quote("").String())
	assert.Equal(t, "[👏, 👏]", quote("👏👏").String())
	assert.Equal(t, "[1, 2]", (&Quotation{Items: []Value{num(1), Atom('2')}}).String())
}

func TestIsDigit(t *testing.T) {
	for _, r := range "0123456789" {
		assert.True(t, isDigit(Atom(r)), "expected %q to be a digit", r)
	}
	for _, v := range []Value{Atom('a'), Atom('٣'), Atom('９'), num(1), quote("1"), nil} {
		assert.False(t, isDigit(v), "expected %v to not be a digit", v)
	}
}

func TestAtoms(t *testing.T) {
	assert.Equal(t, []Value{Atom('1'), Atom('✅'), Atom('🤘')}, atoms("1✅🤘"))
	assert.Empty(t, atoms(""))
}
