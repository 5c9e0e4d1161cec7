package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitEmail(t *testing.T) {
	local, domain := SplitEmail("john.smith@gmail.com")
	assert.Equal(t, "john.smith", local)
	assert.Equal(t, "gmail.com", domain)

	// split happens on the first '@'
	local, domain = SplitEmail(`"weird@local"@example.com`)
	assert.Equal(t, `"weird`, local)
	assert.Equal(t, `local"@example.com`, domain)

	local, domain = SplitEmail("no-at-sign")
	assert.Equal(t, "no-at-sign", local)
	assert.Equal(t, "", domain)

	local, domain = SplitEmail("@example.com")
	assert.Equal(t, "", local)
	assert.Equal(t, "example.com", domain)
}

func TestDomainTLD(t *testing.T) {
	assert.Equal(t, "edu", DomainTLD("stanford.edu"))
	assert.Equal(t, "uk", DomainTLD("example.ac.uk"))
	assert.Equal(t, "", DomainTLD("localhost"))
	assert.Equal(t, "", DomainTLD("trailingdot."))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@gmail.com", NormalizeEmail("  User@Gmail.COM "))
}
