// Package driving defines the driving ports: the interfaces through
// which external actors (chat bridges, the CLI, the TUI, the MCP
// server) invoke the core.
package driving
