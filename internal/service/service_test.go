package service

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Operasi memegang satu lock untuk ketiga koleksi, jadi create yang berjalan
// paralel tidak boleh menghasilkan id ganda.
func TestConcurrentCreatesProduceUniqueIDs(t *testing.T) {
	svc := newTestService()

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := svc.CreateEmployee(EmployeeInput{
				Name:  fmt.Sprintf("Employee %d", i),
				Email: fmt.Sprintf("employee%d@x.com", i),
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	employees := svc.ListEmployees()
	require.Len(t, employees, n)

	seen := make(map[int]bool)
	for _, e := range employees {
		assert.False(t, seen[e.ID], "duplicate id %d", e.ID)
		seen[e.ID] = true
	}
}
