// Package config loads the optional YAML configuration of the wavsplit
// command. Every field has a default, so a missing file section keeps the
// built-in behaviour.
package config
