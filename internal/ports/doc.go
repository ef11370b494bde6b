// Package ports holds the interfaces that connect the board's layers.
//
// BoardService is the inbound port: the application layer implements it and
// the HTTP handlers call it. SnapshotPublisher is the outbound port for
// mirroring the board elsewhere, implemented by the webhook adapter.
// HealthChecker and HealthRegistry let any component take part in readiness.
package ports
