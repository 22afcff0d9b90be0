package surveys

import (
	"fmt"
	"testing"

	"Backend-Flourish-Campus/src/models"

	"github.com/stretchr/testify/assert"
)

func TestValidDomainKeys(t *testing.T) {
	for _, domain := range models.FlourishingDomains {
		assert.True(t, validDomainKeys[domain], domain)
	}
	assert.False(t, validDomainKeys["happiness"])
	assert.False(t, validDomainKeys[""])
}

func TestValidStatementKeys(t *testing.T) {
	for i := 1; i <= 15; i++ {
		key := fmt.Sprintf("statement_%d", i)
		assert.True(t, validStatementKeys[key], key)
	}
	assert.False(t, validStatementKeys["statement_0"])
	assert.False(t, validStatementKeys["statement_16"])
	assert.False(t, validStatementKeys["statement_"])
}
