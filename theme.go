package teller

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme.
type Theme struct {
	UserMsg int // User message accent
	Error   int // Error messages and error-severity replies
	Success int // Success notifications, balance
	Warning int // Warning notifications
	Muted   int // Status bar, placeholders
	Accent  int // Header, headings, modal border
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		UserMsg: 4,
		Error:   1,
		Success: 2,
		Warning: 3,
		Muted:   8,
		Accent:  5,
	}
}
