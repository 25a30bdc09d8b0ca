package task

// transition is a (previous, next) status pair.
type transition struct {
	prev Status
	next Status
}

// transitionDescriptions enumerates the audit-worthy transitions. Pairs not
// listed here (self-transitions, reverse moves, moves out of terminal
// states) produce no audit record.
var transitionDescriptions = map[transition]string{
	{StatusDraft, StatusInProgress}:      "Task moved to work",
	{StatusInProgress, StatusOnCheck}:    "Task sent for review",
	{StatusOnCheck, StatusCompleted}:     "Task completed",
	{StatusInProgress, StatusExpired}:    "Task deadline expired",
	{StatusOnCheck, StatusExpired}:       "Task deadline expired",
}

// DescribeTransition maps a status pair to its audit description. The second
// return value is false when the pair is not audit-worthy; that is a valid
// outcome, never an error.
func DescribeTransition(prev, next Status) (string, bool) {
	description, ok := transitionDescriptions[transition{prev, next}]
	return description, ok
}

// ActiveStage returns the first unfinished stage, or nil when every stage is
// finished or the slice is empty. A task with several unfinished stages is a
// degenerate state; the first by slice order wins so the result stays
// deterministic.
func ActiveStage(stages []Stage) *Stage {
	for i := range stages {
		if !stages[i].Finished {
			return &stages[i]
		}
	}
	return nil
}
