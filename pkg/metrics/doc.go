// Package metrics exports Prometheus counters for classified clients.
//
// A Collector owns a private registry with two series:
//
//	<namespace>_classifications_total{browser, os, device}
//	<namespace>_browser_version{browser}   (histogram)
//
// Fields no rule recognised are labelled "none". Label values come from the
// closed label sets of package useragent, so cardinality stays bounded no
// matter what clients send.
//
//	m := metrics.New(metrics.Config{Namespace: "uafields"})
//	r.Use(useragent.Middleware, m.Middleware)
//	r.Handle("/metrics", m.Handler())
package metrics
