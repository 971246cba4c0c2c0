// Package logging configures the zerolog global logger for bkgen and hands
// out component loggers.
package logging
