// Package ports defines the interfaces (ports) that connect the sorter to
// infrastructure adapters.
//
// # Port Interfaces
//
//   - [Feed]: a source of raw object labels, one per line
//   - [Sink]: renders routing assignments somewhere (stdout, a file)
//   - [Logger]: structured logging abstraction
//
// # Usage
//
// The sorter (pkg/sorter) depends only on these interfaces. Adapters under
// internal/adapters implement them with concrete I/O (fsnotify file follower,
// text/JSON/YAML writers).
package ports
