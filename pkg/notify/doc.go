// Package notify carries the end-of-submit notices. The orchestrator only
// depends on Notifier, so a blocking modal, a log line or a terminal message
// can be swapped without touching validation.
package notify
