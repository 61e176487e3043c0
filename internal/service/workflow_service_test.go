package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repairdesk/internal/contract"
)

func TestAdvanceWalksFullPipeline(t *testing.T) {
	f := newFixture(t)
	actor := actorFor(f.userC)
	svc := NewWorkflowService(f.db, f.validate, f.cipher)

	orderID := f.createOrder(t, actor, f.clientC)

	state, apierr := svc.CurrentState(actor, orderID)
	require.Nil(t, apierr)
	require.NotNil(t, state.Stage)
	assert.Equal(t, "Received", state.Stage.Name)
	assert.Equal(t, int64(1), f.openEntryCount(t, orderID))

	// Received -> Diagnosed
	resp, apierr := svc.Advance(actor, &contract.AdvanceRequest{
		ServiceOrderID: orderID,
		Details:        "Water damage confirmed",
	})
	require.Nil(t, apierr)
	assert.False(t, resp.Finished)
	require.NotNil(t, resp.Entry)
	require.NotNil(t, resp.Entry.Stage)
	assert.Equal(t, "Diagnosed", resp.Entry.Stage.Name)
	assert.Equal(t, "Water damage confirmed", resp.Entry.Details)
	assert.Equal(t, int64(1), f.openEntryCount(t, orderID))

	// Diagnosed -> Repaired
	resp, apierr = svc.Advance(actor, &contract.AdvanceRequest{ServiceOrderID: orderID})
	require.Nil(t, apierr)
	assert.False(t, resp.Finished)
	require.NotNil(t, resp.Entry)
	assert.Equal(t, "Repaired", resp.Entry.Stage.Name)

	state, apierr = svc.CurrentState(actor, orderID)
	require.Nil(t, apierr)
	assert.False(t, state.Finished)
	assert.Equal(t, "Repaired", state.Stage.Name)

	// Repaired is the last stage: the next step closes the order.
	resp, apierr = svc.Advance(actor, &contract.AdvanceRequest{ServiceOrderID: orderID})
	require.Nil(t, apierr)
	assert.True(t, resp.Finished)
	assert.Nil(t, resp.Entry)
	assert.Equal(t, int64(0), f.openEntryCount(t, orderID))

	order := f.reloadOrder(t, orderID)
	assert.True(t, order.IsFinished)

	state, apierr = svc.CurrentState(actor, orderID)
	require.Nil(t, apierr)
	assert.True(t, state.Finished)
	assert.Nil(t, state.Stage)
}

func TestAdvanceOnFinishedOrderIsNoOp(t *testing.T) {
	f := newFixture(t)
	actor := actorFor(f.userC)
	svc := NewWorkflowService(f.db, f.validate, f.cipher)

	orderID := f.createOrder(t, actor, f.clientC)
	for i := 0; i < 3; i++ {
		_, apierr := svc.Advance(actor, &contract.AdvanceRequest{ServiceOrderID: orderID})
		require.Nil(t, apierr)
	}

	var before int64
	require.NoError(t, f.db.Table("status_changes").Where("service_order_id = ?", orderID).Count(&before).Error)

	resp, apierr := svc.Advance(actor, &contract.AdvanceRequest{ServiceOrderID: orderID})
	require.Nil(t, apierr)
	assert.True(t, resp.OK)
	assert.True(t, resp.Finished)
	assert.Nil(t, resp.Entry)

	var after int64
	require.NoError(t, f.db.Table("status_changes").Where("service_order_id = ?", orderID).Count(&after).Error)
	assert.Equal(t, before, after)
}

func TestAdvanceValidatesRequest(t *testing.T) {
	f := newFixture(t)
	svc := NewWorkflowService(f.db, f.validate, f.cipher)

	_, apierr := svc.Advance(actorFor(f.userC), &contract.AdvanceRequest{ServiceOrderID: 0})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusBadRequest, apierr.Code())
}

func TestAdvanceIsCompanyScoped(t *testing.T) {
	f := newFixture(t)
	svc := NewWorkflowService(f.db, f.validate, f.cipher)

	orderID := f.createOrder(t, actorFor(f.userC), f.clientC)

	// A user of another company must not even learn the order exists.
	_, apierr := svc.Advance(actorFor(f.userD), &contract.AdvanceRequest{ServiceOrderID: orderID})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())

	_, apierr = svc.Finish(actorFor(f.userD), orderID)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())

	_, apierr = svc.History(actorFor(f.userD), orderID)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())

	// An elevated actor is exempt from the scope.
	resp, apierr := svc.Advance(elevatedActorFor(f.userD), &contract.AdvanceRequest{ServiceOrderID: orderID})
	require.Nil(t, apierr)
	require.NotNil(t, resp.Entry)
	assert.Equal(t, "Diagnosed", resp.Entry.Stage.Name)
}

func TestFinishClosesAllOpenEntries(t *testing.T) {
	f := newFixture(t)
	actor := actorFor(f.userC)
	svc := NewWorkflowService(f.db, f.validate, f.cipher)

	orderID := f.createOrder(t, actor, f.clientC)
	_, apierr := svc.Advance(actor, &contract.AdvanceRequest{ServiceOrderID: orderID})
	require.Nil(t, apierr)

	resp, apierr := svc.Finish(actor, orderID)
	require.Nil(t, apierr)
	assert.True(t, resp.OK)
	assert.Equal(t, int64(1), resp.ClosedEntries)
	assert.Equal(t, int64(0), f.openEntryCount(t, orderID))
	assert.True(t, f.reloadOrder(t, orderID).IsFinished)

	// Finishing again succeeds and touches nothing.
	resp, apierr = svc.Finish(actor, orderID)
	require.Nil(t, apierr)
	assert.True(t, resp.OK)
	assert.Equal(t, int64(0), resp.ClosedEntries)
}

func TestHistoryReturnsJournalInCreationOrder(t *testing.T) {
	f := newFixture(t)
	actor := actorFor(f.userC)
	svc := NewWorkflowService(f.db, f.validate, f.cipher)

	orderID := f.createOrder(t, actor, f.clientC)
	_, apierr := svc.Advance(actor, &contract.AdvanceRequest{ServiceOrderID: orderID, Details: "diagnosis done"})
	require.Nil(t, apierr)
	_, apierr = svc.Advance(actor, &contract.AdvanceRequest{ServiceOrderID: orderID})
	require.Nil(t, apierr)

	resp, apierr := svc.History(actor, orderID)
	require.Nil(t, apierr)
	require.NotNil(t, resp.ServiceOrder)
	require.Len(t, resp.History, 3)

	assert.Equal(t, "Received", resp.History[0].Stage.Name)
	assert.Equal(t, "Diagnosed", resp.History[1].Stage.Name)
	assert.Equal(t, "Repaired", resp.History[2].Stage.Name)

	assert.True(t, resp.History[0].IsCompleted)
	assert.True(t, resp.History[1].IsCompleted)
	assert.False(t, resp.History[2].IsCompleted)

	assert.Equal(t, "diagnosis done", resp.History[1].Details)
	for _, entry := range resp.History {
		require.NotNil(t, entry.User)
		assert.Equal(t, f.userC.UserID, entry.User.ID)
	}
}

func TestOrdersAtPosition(t *testing.T) {
	f := newFixture(t)
	actor := actorFor(f.userC)
	svc := NewWorkflowService(f.db, f.validate, f.cipher)

	first := f.createOrder(t, actor, f.clientC)
	second := f.createOrder(t, actor, f.clientC)
	_, apierr := svc.Advance(actor, &contract.AdvanceRequest{ServiceOrderID: second})
	require.Nil(t, apierr)

	resp, apierr := svc.OrdersAtPosition(actor, 1)
	require.Nil(t, apierr)
	require.Equal(t, 1, resp.Count)
	require.NotNil(t, resp.Entries[0].ServiceOrder)
	assert.Equal(t, first, resp.Entries[0].ServiceOrder.ID)

	resp, apierr = svc.OrdersAtPosition(actor, 2)
	require.Nil(t, apierr)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, second, resp.Entries[0].ServiceOrder.ID)

	// No orders ever reached the last stage.
	_, apierr = svc.OrdersAtPosition(actor, 3)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())

	// Another company sees none of them.
	_, apierr = svc.OrdersAtPosition(actorFor(f.userD), 1)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())
}
