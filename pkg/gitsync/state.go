package gitsync

// State tracks how far a run advanced through the pipeline. The workflow
// is strictly linear; no state is ever re-entered.
type State string

const (
	StateIdle             State = "idle"
	StateInspected        State = "inspected"
	StateNoChanges        State = "no-changes"
	StateStaged           State = "staged"
	StateSummarized       State = "summarized"
	StateMessageGenerated State = "message-generated"
	StateCommitted        State = "committed"
	StatePushed           State = "pushed"
	StateAborted          State = "aborted"
)
