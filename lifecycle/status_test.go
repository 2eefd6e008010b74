package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextTransitionTable(t *testing.T) {
	tests := []struct {
		name      string
		status    Status
		orderType OrderType
		want      *Transition
	}{
		{"received collection", StatusReceived, TypeCollection, &Transition{Label: "Start Preparing", Target: StatusPreparing}},
		{"received delivery", StatusReceived, TypeDelivery, &Transition{Label: "Start Preparing", Target: StatusPreparing}},
		{"preparing collection", StatusPreparing, TypeCollection, &Transition{Label: "Mark as Ready", Target: StatusReady}},
		{"preparing delivery", StatusPreparing, TypeDelivery, &Transition{Label: "Out for Delivery", Target: StatusOutForDelivery}},
		{"ready collection", StatusReady, TypeCollection, &Transition{Label: "Mark as Collected", Target: StatusCompleted}},
		{"out_for_delivery delivery", StatusOutForDelivery, TypeDelivery, &Transition{Label: "Mark as Delivered", Target: StatusCompleted}},
		{"completed collection", StatusCompleted, TypeCollection, nil},
		{"completed delivery", StatusCompleted, TypeDelivery, nil},
		{"cancelled collection", StatusCancelled, TypeCollection, nil},
		{"cancelled delivery", StatusCancelled, TypeDelivery, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextTransition(tt.status, tt.orderType)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestNextTransitionNilOnlyForTerminal(t *testing.T) {
	// nil iff terminal, per order type the status is reachable for.
	reachable := map[OrderType][]Status{
		TypeCollection: {StatusReceived, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled},
		TypeDelivery:   {StatusReceived, StatusPreparing, StatusOutForDelivery, StatusCompleted, StatusCancelled},
	}
	for orderType, statuses := range reachable {
		for _, s := range statuses {
			got := NextTransition(s, orderType)
			if IsTerminal(s) {
				assert.Nil(t, got, "%s/%s", s, orderType)
			} else {
				assert.NotNil(t, got, "%s/%s", s, orderType)
			}
		}
	}
}

func TestNextTransitionUnreachableBranch(t *testing.T) {
	// ready is collection-only, out_for_delivery delivery-only.
	assert.Nil(t, NextTransition(StatusReady, TypeDelivery))
	assert.Nil(t, NextTransition(StatusOutForDelivery, TypeCollection))
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusReceived, StatusPreparing, StatusReady, StatusOutForDelivery, StatusCompleted, StatusCancelled} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Status("refunded").Valid())
	assert.False(t, Status("").Valid())

	assert.True(t, TypeCollection.Valid())
	assert.True(t, TypeDelivery.Valid())
	assert.False(t, OrderType("dine_in").Valid())
}
