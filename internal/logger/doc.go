// Package logger provides structured logging for the transcribe proxy,
// backed by zerolog. It supports JSON and console output, component tagging,
// and a process-wide global logger for packages without an injected instance.
package logger
