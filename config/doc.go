// Package config loads cityflow settings.
//
// Sources, lowest to highest priority:
//
//  1. Default() values.
//  2. A YAML file passed to Load (optional; "" skips it).
//  3. Environment variables:
//     CITYFLOW_LOG_LEVEL    → Logging.Level
//     CITYFLOW_LOG_FORMAT   → Logging.Format
//     CITYFLOW_PARALLELISM  → Routing.Parallelism
//
// The merged result is validated with struct tags; any violation is
// reported as ErrInvalid wrapping a readable list of field errors.
//
// Example file:
//
//	network:
//	  prioritize: true
//	  facility_factor: 0.7
//	  population_factor: 0.8
//	  population_threshold: 500000
//	routing:
//	  parallelism: 4
//	  hospital_type: Medical
//	logging:
//	  level: debug
//	  format: json
package config
