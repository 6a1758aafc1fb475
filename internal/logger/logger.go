package logger

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

var (
	stampColor   = color.New(color.FgHiBlack)
	infoColor    = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

func stamp() string {
	return stampColor.Sprintf("[%s]", time.Now().Format("15:04:05"))
}

// Info logs general information.
func Info(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", stamp(), infoColor.Sprint(fmt.Sprintf(format, args...)))
}

// Success logs a successful operation.
func Success(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", stamp(), successColor.Sprintf("✓ %s", fmt.Sprintf(format, args...)))
}

// Warning logs a recoverable problem.
func Warning(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", stamp(), warnColor.Sprintf("⚠ %s", fmt.Sprintf(format, args...)))
}

// Error logs a failure.
func Error(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", stamp(), errorColor.Sprintf("✗ %s", fmt.Sprintf(format, args...)))
}
