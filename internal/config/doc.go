// Package config loads the YAML configuration of the rootscan command.
//
// A configuration file sets the default scanner parameters and the scanned
// function; command-line flags take precedence over it.
package config
