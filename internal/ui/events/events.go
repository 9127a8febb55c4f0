// Package events holds messages the app shell sends to its pages.
package events

import "github.com/alvarorichard/goanime-site/internal/i18n"

// Focus is sent to a page when it starts receiving keys.
type Focus struct{}

// Blur is sent to a page when keys go back to the shell.
type Blur struct{}

// Language is broadcast to every page after the UI language changes.
type Language struct {
	Lang i18n.Language
}
