// Package shared provides request/response helpers and context keys used
// across API handlers and middleware.
package shared
