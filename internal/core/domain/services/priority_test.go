package services_test

import (
	"testing"
	"time"

	"boutique/internal/core/domain/services"
	"boutique/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityList(t *testing.T) {
	orders := build(t,
		orderSpec{id: 1, expected: date(2024, time.March, 1)},
		orderSpec{id: 2, expected: date(2024, time.January, 15)},
		orderSpec{id: 3, expected: date(2024, time.February, 10)},
	)

	t.Run("ascending by expected delivery date", func(t *testing.T) {
		assert.Equal(t, []int64{2, 3, 1}, ids(services.PriorityList(orders, services.Ascending)))
	})

	t.Run("descending reverses it", func(t *testing.T) {
		assert.Equal(t, []int64{1, 3, 2}, ids(services.PriorityList(orders, services.Descending)))
	})

	t.Run("input is not reordered", func(t *testing.T) {
		services.PriorityList(orders, services.Ascending)
		assert.Equal(t, []int64{1, 2, 3}, ids(orders))
	})
}

func TestPriorityList_TiesByID(t *testing.T) {
	same := date(2024, time.April, 2)
	orders := build(t,
		orderSpec{id: 9, expected: same},
		orderSpec{id: 4, expected: same},
		orderSpec{id: 6, expected: date(2024, time.April, 1)},
		orderSpec{id: 5, expected: same},
	)

	assert.Equal(t, []int64{6, 4, 5, 9}, ids(services.PriorityList(orders, services.Ascending)))
	assert.Equal(t, []int64{4, 5, 9, 6}, ids(services.PriorityList(orders, services.Descending)))
}

func TestParseSortDirection(t *testing.T) {
	for in, want := range map[string]services.SortDirection{
		"":     services.Ascending,
		"asc":  services.Ascending,
		"ASC":  services.Ascending,
		"desc": services.Descending,
		"Desc": services.Descending,
	} {
		got, err := services.ParseSortDirection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := services.ParseSortDirection("newest")
	assert.True(t, errs.IsValidation(err))
}
