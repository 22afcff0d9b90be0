package surveys

import (
	"fmt"

	"Backend-Flourish-Campus/src/models"
)

// validDomainKeys domain ที่รับใน EnablerBarrierSelection
var validDomainKeys = func() map[string]bool {
	m := make(map[string]bool, len(models.FlourishingDomains))
	for _, d := range models.FlourishingDomains {
		m[d] = true
	}
	return m
}()

// validStatementKeys barrier statement ที่รับใน v2 wellbeing (statement_1 .. statement_15)
var validStatementKeys = func() map[string]bool {
	m := make(map[string]bool, 15)
	for i := 1; i <= 15; i++ {
		m[fmt.Sprintf("statement_%d", i)] = true
	}
	return m
}()
