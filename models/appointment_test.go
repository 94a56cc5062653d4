package models

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusCompleted},
		{StatusConfirmed, StatusCancelled},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	forbidden := []struct{ from, to string }{
		{StatusPending, StatusCompleted}, // must go through confirmed
		{StatusCancelled, StatusPending},
		{StatusCancelled, StatusConfirmed},
		{StatusCompleted, StatusPending},
		{StatusCompleted, StatusCancelled},
		{StatusConfirmed, StatusPending},
		{StatusPending, StatusPending},
	}
	for _, tc := range forbidden {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be rejected", tc.from, tc.to)
		}
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	for _, terminal := range []string{StatusCancelled, StatusCompleted} {
		for _, to := range []string{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted} {
			if CanTransition(terminal, to) {
				t.Errorf("terminal state %s allows transition to %s", terminal, to)
			}
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted} {
		if !ValidStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []string{"", "Pending", "done", "unknown"} {
		if ValidStatus(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestBlocksSlot(t *testing.T) {
	if !BlocksSlot(StatusPending) || !BlocksSlot(StatusConfirmed) {
		t.Error("pending and confirmed appointments must block their slot")
	}
	if BlocksSlot(StatusCancelled) || BlocksSlot(StatusCompleted) {
		t.Error("cancelled and completed appointments must not block their slot")
	}
}

func TestBlockingStatusesAgreeWithBlocksSlot(t *testing.T) {
	for _, s := range BlockingStatuses {
		if !BlocksSlot(s) {
			t.Errorf("BlockingStatuses contains %q but BlocksSlot rejects it", s)
		}
	}
	blocking := 0
	for _, s := range []string{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted} {
		if BlocksSlot(s) {
			blocking++
		}
	}
	if blocking != len(BlockingStatuses) {
		t.Errorf("BlocksSlot accepts %d statuses, BlockingStatuses lists %d", blocking, len(BlockingStatuses))
	}
}
