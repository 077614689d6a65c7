package terminal

// Conversation is the dialog state of the engine: Idle or AwaitingFollowUp.
// The set is closed; no other package can add variants.
type Conversation interface {
	conversation()
}

// Idle routes submitted lines to the command table.
type Idle struct{}

// AwaitingFollowUp routes the next submitted line, untokenized, to the
// follow-up handler of Command and renders Prompt instead of the normal prompt.
type AwaitingFollowUp struct {
	Command Command
	Prompt  string
}

func (Idle) conversation()             {}
func (AwaitingFollowUp) conversation() {}
