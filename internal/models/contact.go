package models

// ContactSubmission is the body of POST /send-contact-email. Beyond the
// three visible fields it carries the anti-abuse signals collected by the
// form: hidden honeypot inputs, the form-load timestamp with its nonce and
// derived token, interaction counters, and client metadata.
//
// Submissions are never stored: they are validated, forwarded to the email
// provider, then dropped.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`

	Honeypot1 string `json:"honeypot1,omitempty"`
	Honeypot2 string `json:"honeypot2,omitempty"`
	Honeypot3 string `json:"honeypot3,omitempty"`

	Timestamp     int64  `json:"timestamp,omitempty"`
	Nonce         string `json:"nonce,omitempty"`
	SecurityToken string `json:"securityToken,omitempty"`

	MouseMovements *int `json:"mouseMovements,omitempty"`
	Keystrokes     *int `json:"keystrokes,omitempty"`

	UserAgent        string `json:"userAgent,omitempty"`
	ScreenResolution string `json:"screenResolution,omitempty"`
	Timezone         string `json:"timezone,omitempty"`
}

// Honeypots returns the hidden-field values in order.
func (s *ContactSubmission) Honeypots() []string {
	return []string{s.Honeypot1, s.Honeypot2, s.Honeypot3}
}
