package utils

import (
	"fmt"
	"time"
)

// MessageType is a custom type used as a placeholder for various message types.
type MessageType int

// The message types used across the CLI application.
const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

// Colors used across the CLI application.
const (
	DefaultColor = "\x1b[0m"
	StatusColor  = "\x1b[36m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
)

// DecorateText shows the message types in different colors.
func DecorateText(s string, msgType MessageType) string {
	switch msgType {
	case DefaultMessage:
		return DefaultColor + s + DefaultColor
	case StatusMessage:
		return StatusColor + s + DefaultColor
	case SuccessMessage:
		return SuccessColor + s + DefaultColor
	case ErrorMessage:
		return ErrorColor + s + DefaultColor
	}
	return s
}

// FormatTime formats the render duration to a human readable value.
func FormatTime(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	var (
		days    = int64(d / (24 * time.Hour))
		hours   = int64(d/time.Hour) % 24
		minutes = int64(d/time.Minute) % 60
		seconds = (d % time.Minute).Seconds()
	)
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm %.2fs", days, hours, minutes, seconds)
	case hours > 0:
		return fmt.Sprintf("%dh %dm %.2fs", hours, minutes, seconds)
	}
	return fmt.Sprintf("%dm %.2fs", minutes, seconds)
}
