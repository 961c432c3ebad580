// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (requests, results, preferences) and contracts
// (interfaces) only; the conversion arithmetic lives in internal/radix.
package domain
