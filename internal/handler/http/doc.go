// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the JSON
// API and the page shell. Cross-cutting concerns such as session
// authentication, the page route guard, request tracing, access logging, and
// response compression are handled in this package before requests are
// delegated to the service layer.
package http
