// Package http implements the inbound HTTP API of paramgate: inline and
// stored-contract validation plus contract management (register, fetch,
// list, delete).
//
// Every request is assigned a trace ID and a context-scoped logger by the
// middleware chain; handlers and the layers below retrieve it with
// logger.FromRequest / logger.FromContext.
package http
