// Package voice describes the speech input capability offered to clients.
// Recognition itself runs in the browser; the server owns the capability
// flag and the user-facing message catalog so every client reports the
// same wording for the same failure.
package voice

// Error codes reported by browser speech recognition.
const (
	ErrNoSpeech          = "no-speech"
	ErrLanguage          = "language-not-supported"
	ErrNotAllowed        = "not-allowed"
	ErrServiceNotAllowed = "service-not-allowed"
)

// Descriptor is served to clients so they can wire up speech input.
type Descriptor struct {
	Enabled            bool              `json:"enabled"`
	Language           string            `json:"language"`
	UnsupportedMessage string            `json:"unsupportedMessage"`
	FallbackMessage    string            `json:"fallbackMessage"`
	ErrorMessages      map[string]string `json:"errorMessages"`
}

// NewDescriptor builds the descriptor for the given capability flag.
func NewDescriptor(enabled bool) Descriptor {
	return Descriptor{
		Enabled:            enabled,
		Language:           "en-US",
		UnsupportedMessage: "Voice input is not supported in this browser. Please type your symptoms instead.",
		FallbackMessage:    "Voice input failed. Please try again or type your symptoms.",
		ErrorMessages: map[string]string{
			ErrNoSpeech:          "No speech was detected. Please try again.",
			ErrLanguage:          "The selected language is not supported for voice input.",
			ErrNotAllowed:        "Microphone access was denied. Please allow microphone access and try again.",
			ErrServiceNotAllowed: "Microphone access was denied. Please allow microphone access and try again.",
		},
	}
}
