// Package views derives display values from stored data: progress
// percentages, expiry status, search, grouping, sorting and small text
// helpers. Nothing here touches the store.
package views
