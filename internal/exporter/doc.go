// Package exporter writes schedule documents and materialized session lists
// to CSV for use outside the service.
package exporter
