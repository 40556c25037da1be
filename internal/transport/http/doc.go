// Package http exposes the generated water-quality artifacts to the web
// front end. It is a read-only surface: the three JSON documents are produced
// by cmd/processor and served here verbatim, so clients always see exactly
// what the pipeline wrote. Health and Prometheus metrics endpoints ride
// alongside the data routes.
package http
