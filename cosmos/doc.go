// Package cosmos provides an ergonomic object model over a document-database
// transport context: Client owns databases, Database owns containers and
// users, Container owns items.
//
// The object model performs no I/O of its own. Every operation is forwarded
// to a transport.TransportContext, and the raw property maps it returns are
// wrapped into typed handles. Control flow is strictly top-down and
// synchronous; handles are cheap and carry no state other than their resource
// link, a properties snapshot captured at construction, and (for containers)
// the most recently observed session token.
package cosmos
