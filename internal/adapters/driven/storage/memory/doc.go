// Package memory provides in-memory implementations of the storage
// driven ports. These are the default stores: sessions are inherently
// transient, and the transfer registry only needs durability when the
// SQLite journal is enabled.
package memory
