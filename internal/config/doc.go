// Package config manages user-level settings stored in
// <user config dir>/inix/config.yaml. The same directory holds user
// templates, one subdirectory per template.
package config
