// Package api handles incoming HTTP requests, routing, request decoding,
// and response formatting. It acts as an adapter between HTTP clients and
// the task store, translating store outcomes into status codes and bodies.
package api
