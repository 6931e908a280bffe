//go:build !integration

package service

import (
	"testing"

	"github.com/guttosm/drone-fulfillment/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

func TestBacklogQueue(t *testing.T) {
	q := NewBacklogQueue()
	q.Append(model.BacklogFragment{OrderID: 1})
	assert.Zero(t, q.Len())

	first := model.BacklogFragment{OrderID: 1, Requested: []model.OrderLine{{ProductID: 10, Quantity: 95}}}
	second := model.BacklogFragment{OrderID: 1, Requested: []model.OrderLine{{ProductID: 0, Quantity: 2}, {ProductID: 7, Quantity: 3}}}
	q.Append(first)
	q.Append(second)

	assert.Equal(t, 2, q.Len())
	assert.Equal(t, 100, q.DeferredUnits())

	snapshot := q.Snapshot()
	snapshot[0].Requested[0].Quantity = 1
	assert.Equal(t, 100, q.DeferredUnits())

	drained := q.Drain()
	assert.Equal(t, []model.BacklogFragment{first, second}, drained)
	assert.Zero(t, q.Len())
	assert.Empty(t, q.Snapshot())
	assert.Empty(t, q.Drain())
}
