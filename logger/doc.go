// Package logger provides the package-level structured logger used by the
// rest of this module: a slog.Logger fanned out to a console handler, a
// rotated log file, or both, configured once at startup via Initialize.
package logger
