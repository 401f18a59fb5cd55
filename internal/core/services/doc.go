// Package services contains the core application services: the query
// dispatcher, the pure grouping and pagination engines, the resource
// resolver and the transfer tracker. Services depend on ports only;
// all I/O goes through driven interfaces.
package services
