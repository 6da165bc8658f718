package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimationTotals(t *testing.T) {
	est := Estimation{
		Services: []EstimationService{{ServiceID: "svc-1", PackagePrice: 10000, Quantity: 2}},
		Cards:    []EstimationCard{{CardID: "card-1", PricePerCard: 500, Quantity: 4}},
	}
	est.RecalculateTotal()
	assert.Equal(t, 22000.0, est.TotalCost)

	assert.True(t, est.RemoveService("svc-1"))
	assert.False(t, est.RemoveService("svc-1"))
	est.RecalculateTotal()
	assert.Equal(t, 2000.0, est.TotalCost)
	assert.False(t, est.IsEmpty())

	assert.True(t, est.RemoveCard("card-1"))
	assert.True(t, est.IsEmpty())
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "5f1c2a9e", ShortID("5f1c2a9e-77aa-4b1b-9d0e-1234567890ab"))
	assert.Equal(t, "abc", ShortID("abc"))
}

func TestPagination(t *testing.T) {
	p := NewPagination(3, 5, 11)
	assert.Equal(t, 3, p.Pages)
	assert.Equal(t, int64(10), p.Skip())
	assert.Equal(t, 0, NewPagination(1, 5, 0).Pages)

	q := PageQuery{Page: 0, Limit: 500}.Normalize(5, 50)
	assert.Equal(t, PageQuery{Page: 1, Limit: 50}, q)
}
