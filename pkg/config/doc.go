// Package config loads bkgen settings from the embedded defaults, an
// optional bkgen.toml in the project directory and BKGEN_* environment
// variables, in that order of precedence (last wins).
package config
