// Package mock provides a scripted test double for the extraction client,
// so pipeline behavior can be tested without a live extraction service.
package mock
