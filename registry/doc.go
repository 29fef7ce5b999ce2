// Package registry holds the ordered, immutable set of targets a readiness
// run probes.
//
// A registry is built once at process start, either directly from targets or
// from a YAML/JSON file, and never mutated afterwards. Construction enforces
// the configuration invariants up front: no empty set, no duplicate names,
// every target valid. Violations are configuration errors, reported before
// any probing happens.
//
// Registry files look like:
//
//	defaults:
//	  retries: 3
//	  delay: 5s
//	  timeout: 2s
//	targets:
//	  - name: postgres
//	    address: localhost:5432
//	    critical: true
//	  - name: api
//	    address: http://localhost:8080
//	    health_path: /health
//	    critical: true
//	  - name: grafana
//	    address: ${GRAFANA_ADDR}
//	    health_path: /api/health
//
// Addresses may reference environment variables with ${VAR}; a missing
// variable is an error, never a silent empty string.
package registry
