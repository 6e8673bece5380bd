// Package http contains the chi HTTP handlers for the schedule API. Handlers
// depend on narrow service interfaces and render errors as RFC 7807 problem
// documents.
package http
