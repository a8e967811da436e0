// Package platform provides the filesystem operations inix performs on a
// target project. All reads and mutations go through the FS interface, which
// is backed by afero so tests can run against an in-memory filesystem.
package platform
