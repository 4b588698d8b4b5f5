// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Scale mode switching, JSON catalogs, revolution events
// 0.2.0 - Camera rotation, faded trails, Bodies and Events tabs
// 0.1.0 - Initial release: orbit view, three scale modes, headless table/snapshot
