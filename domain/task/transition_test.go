package task

import "testing"

func TestDescribeTransition_AuditWorthyPairs(t *testing.T) {
	tests := []struct {
		name string
		prev Status
		next Status
	}{
		{"draft to in progress", StatusDraft, StatusInProgress},
		{"in progress to on check", StatusInProgress, StatusOnCheck},
		{"on check to completed", StatusOnCheck, StatusCompleted},
		{"in progress to expired", StatusInProgress, StatusExpired},
		{"on check to expired", StatusOnCheck, StatusExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			description, ok := DescribeTransition(tt.prev, tt.next)
			if !ok {
				t.Fatalf("DescribeTransition(%s, %s) not audit-worthy, want description", tt.prev, tt.next)
			}
			if description == "" {
				t.Errorf("DescribeTransition(%s, %s) returned empty description", tt.prev, tt.next)
			}
		})
	}
}

func TestDescribeTransition_UnmappedPairs(t *testing.T) {
	statuses := []Status{StatusDraft, StatusInProgress, StatusOnCheck, StatusExpired, StatusCompleted}

	audited := func(prev, next Status) bool {
		_, ok := transitionDescriptions[transition{prev, next}]
		return ok
	}

	// Every pair outside the audit-worthy set yields no description, and
	// repeated calls agree (the function is pure).
	for _, prev := range statuses {
		for _, next := range statuses {
			if audited(prev, next) {
				continue
			}
			for i := 0; i < 2; i++ {
				description, ok := DescribeTransition(prev, next)
				if ok {
					t.Errorf("DescribeTransition(%s, %s) = %q, want no description", prev, next, description)
				}
			}
		}
	}
}

func TestDescribeTransition_SelfAndTerminal(t *testing.T) {
	if _, ok := DescribeTransition(StatusInProgress, StatusInProgress); ok {
		t.Error("self-transition should not be audit-worthy")
	}
	if _, ok := DescribeTransition(StatusCompleted, StatusInProgress); ok {
		t.Error("transition out of COMPLETED should not be audit-worthy")
	}
	if _, ok := DescribeTransition(StatusExpired, StatusDraft); ok {
		t.Error("transition out of EXPIRED should not be audit-worthy")
	}
}

func TestActiveStage(t *testing.T) {
	tests := []struct {
		name   string
		stages []Stage
		wantID string
		none   bool
	}{
		{
			name:   "empty sequence",
			stages: nil,
			none:   true,
		},
		{
			name: "all finished",
			stages: []Stage{
				{ID: "s1", Finished: true},
				{ID: "s2", Finished: true},
			},
			none: true,
		},
		{
			name: "single unfinished",
			stages: []Stage{
				{ID: "s1", Finished: true},
				{ID: "s2", Finished: false},
				{ID: "s3", Finished: true},
			},
			wantID: "s2",
		},
		{
			name: "multiple unfinished picks first by order",
			stages: []Stage{
				{ID: "s1", Finished: true},
				{ID: "s2", Finished: false},
				{ID: "s3", Finished: false},
			},
			wantID: "s2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ActiveStage(tt.stages)
			if tt.none {
				if got != nil {
					t.Fatalf("ActiveStage() = %v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatal("ActiveStage() = nil, want a stage")
			}
			if got.ID != tt.wantID {
				t.Errorf("ActiveStage().ID = %s, want %s", got.ID, tt.wantID)
			}
		})
	}
}

func TestStage_FinalizeIdempotent(t *testing.T) {
	stage := Stage{ID: "s1"}

	stage.Finalize()
	if !stage.Finished {
		t.Fatal("Finalize() did not mark stage finished")
	}

	stage.Finalize()
	if !stage.Finished {
		t.Error("second Finalize() changed the finished flag")
	}
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range []Status{StatusDraft, StatusInProgress, StatusOnCheck, StatusExpired, StatusCompleted} {
		if !s.IsValid() {
			t.Errorf("IsValid(%s) = false, want true", s)
		}
	}
	if Status("UNKNOWN").IsValid() {
		t.Error("IsValid(UNKNOWN) = true, want false")
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	if !StatusCompleted.IsTerminal() || !StatusExpired.IsTerminal() {
		t.Error("COMPLETED and EXPIRED should be terminal")
	}
	for _, s := range []Status{StatusDraft, StatusInProgress, StatusOnCheck} {
		if s.IsTerminal() {
			t.Errorf("IsTerminal(%s) = true, want false", s)
		}
	}
}
