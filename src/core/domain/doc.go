// Package domain contains the core domain model for the employee directory.
//
// This package defines:
//   - Entities: Department (read-only reference data) and Employee
//   - Domain Errors: sentinel error kinds and their wrappers
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (database, HTTP, etc.)
//
// An Employee refers to its Department by ID. The Department value attached
// to an Employee is a read snapshot filled by the persistence layer; writes
// never flow back into the departments table through it.
package domain
