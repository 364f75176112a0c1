// Package ports holds the interfaces between the dashboard core and its adapters.
// Mocks in internal/mocks are generated from them.
//
//go:generate mockery
package ports
