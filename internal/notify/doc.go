// Package notify delivers recovery intents to the administrator. The
// default notifier composes a mailto: URL and hands it to the platform
// opener; a logging notifier stands in where no opener is available.
package notify
