// Package domain contains the types shared by every layer: sentinel errors
// and the per-field ValidationError. Tracker records live in sub-packages
// (domain/issue for the host-facing model, domain/artifact for the TeamForge
// records the gateway exchanges).
package domain
