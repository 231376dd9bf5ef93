package services

// prompts.go holds the system prompt and canned replies used by the
// dialogue dispatcher, kept in one place so the wording is easy to tweak.

const (
	// GraceSystemPrompt frames every LLM completion.
	GraceSystemPrompt = "You are Grace, a helpful healthcare chatbot for Grace Hospital."

	// NameRepeatReply is sent when "my name is" was detected but no name
	// token could be extracted.
	NameRepeatReply = "I didn't catch your name clearly. Could you please repeat it?"

	// AskNameReply greets a patient whose name is still unknown.
	AskNameReply = "Hello! How can I assist you today? Could you please tell me your name?"

	// NoSlotsReply is sent when the calendar returns no open slots.
	NoSlotsReply = "No available slots at the moment. Please try again later."

	// SlotNotFoundReply is sent for an out-of-range slot reference.
	SlotNotFoundReply = "I couldn't find that slot. Please check the available slots and try again."

	// CancelReply acknowledges a cancellation request.
	CancelReply = "Your appointment has been cancelled."

	// NoSummaryReply is sent when the session has nothing to summarize.
	NoSummaryReply = "I don't have enough information for a summary yet."

	// MedDetailsPrompt starts the medication setup flow.
	MedDetailsPrompt = "Sure, let's set up your medication reminder. Please tell me the medication name, dosage, tablet count, and the time you'd like to take it. For example: 'Atomoxetine 80 mgs, 1 tablet at 8:00 AM every day'"

	// MedDetailsRetryPrompt re-asks when fewer than two comma-separated
	// parts were supplied.
	MedDetailsRetryPrompt = "I didn't catch all the details. Please provide medication name, dosage, tablet count, and the time. For example: 'Atomoxetine 80 mgs, 1 tablet at 8:00 AM every day'"

	// MedRestartReply is sent when the patient declines the confirmation.
	MedRestartReply = "Okay, let's start over. What medication reminder would you like to set up?"
)
