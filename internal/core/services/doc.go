// Package services implements the driving port interfaces.
// Services contain the core logic and orchestrate calls to driven
// ports (adapters).
//
// Services depend on domain, the ports and the logger. Reload retries use
// retry-go and change detection hashes output with xxhash.
package services
