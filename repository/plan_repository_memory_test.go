package repository

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-planner/domain"
)

func TestPlanRepositoryMemory_SaveAndFind(t *testing.T) {
	repo := NewPlanRepositoryMemory()

	plans := []domain.LoanPlan{
		{ID: "p1", Name: "Plan 1", TotalCost: 72000},
		{ID: "p2", Name: "Plan 2", TotalCost: 80000},
	}
	require.NoError(t, repo.SavePlans(plans))

	found, ok := repo.FindPlan("p1")
	require.True(t, ok)
	assert.Equal(t, plans[0], found)

	_, ok = repo.FindPlan("missing")
	assert.False(t, ok)
}

func TestPlanRepositoryMemory_OverwritesSameID(t *testing.T) {
	repo := NewPlanRepositoryMemory()

	require.NoError(t, repo.SavePlans([]domain.LoanPlan{{ID: "p1", TotalCost: 72000}}))
	require.NoError(t, repo.SavePlans([]domain.LoanPlan{{ID: "p1", TotalCost: 90000}}))

	found, ok := repo.FindPlan("p1")
	require.True(t, ok)
	assert.Equal(t, 90000.0, found.TotalCost)
}

func TestPlanRepositoryMemory_ConcurrentAccess(t *testing.T) {
	repo := NewPlanRepositoryMemory()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("p%d", n)
			_ = repo.SavePlans([]domain.LoanPlan{{ID: id}})
			repo.FindPlan(id)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 20; i++ {
		_, ok := repo.FindPlan(fmt.Sprintf("p%d", i))
		assert.True(t, ok)
	}
}

func TestMockCache(t *testing.T) {
	cache := NewMockCache()

	_, ok := cache.Get("key")
	assert.False(t, ok)

	require.NoError(t, cache.Set("key", "value"))

	val, ok := cache.Get("key")
	require.True(t, ok)
	assert.Equal(t, "value", val)
}
