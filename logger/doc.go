// Package logger provides the leveled logging interface arbor packages emit
// through, a default implementation writing colorized lines to stdout, and a
// decorator shipping warning-and-above events to Sentry.
package logger
