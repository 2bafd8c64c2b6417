package routes

// Package routes wires the HTTP surface of the service.
//
// Layout:
// - api.go: versioned API routes (/v1/*) and health probes
// - web.go: informational routes (/, /docs)
// - routes.go: package docs
//
// Usage:
// routes.SetupAllRoutes(router, addressController)
