// Package logger builds the process-wide slog.Logger used by the simkit
// tools and wired into checkval as the severity-tagged diagnostic sink.
//
// It is a thin option-based factory over log/slog: pick a format (text for
// interactive runs, JSON for batch), a level, an output writer and static
// attributes, then install the result with SetAsDefault or
// checkval.SetDiagnosticLogger.
package logger
