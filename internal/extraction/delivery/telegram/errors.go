package telegram

import (
	"errors"

	"action-item-extractor/internal/extraction"
)

const (
	msgWelcome = "👋 Welcome to the *Action Item Extractor*!\n\nPaste a chat transcript and I will reply with the action items I find: what needs doing, who owns it and when it is due."
	msgHelp    = "*How to use:*\n\nSend a multi-speaker transcript, one line per message, for example:\n`Alex: Ben, can you review the report by EOD tomorrow?`\n`Ben: Sure.`"
	msgWorking = "⏳ Extracting action items..."
	msgNone    = "⚠️ No action items found in that transcript."
	msgFailed  = "Something went wrong while processing your message. Please try again."
)

// errorMessage returns a user-facing error string for the given error.
func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, extraction.ErrDialogueTooLong):
		return "That transcript is too long. Please send a shorter excerpt."
	case errors.Is(err, extraction.ErrLLMUnavailable):
		return "The language model is unavailable right now. Please try again later."
	default:
		return msgFailed
	}
}
