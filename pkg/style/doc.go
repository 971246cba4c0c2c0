// Package style renders terminal output for the bkgen command: coloured
// errors, markdown documentation and tables.
package style
