// Package logging builds the zap loggers used by the commands.
package logging
