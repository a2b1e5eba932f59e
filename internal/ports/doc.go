// Package ports declares the seams of the tracker adapter.
//
// IssueTracker is the service port: the HTTP handlers call it and
// app.TrackerService implements it. TrackerGateway is the client port onto
// the TeamForge SOAP API, implemented by the acl package. The health ports
// let outbound clients report readiness without importing the health
// registry.
package ports
