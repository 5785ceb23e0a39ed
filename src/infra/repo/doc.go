// Package repo provides the persistence adapters for the directory.
//
// Two adapters implement ports.DirectoryRepository:
//   - PostgresRepository, on a pgx connection pool
//   - SQLiteRepository, on an embedded SQLite database via database/sql
//
// Both resolve an employee's department with a join on every read and
// map driver errors onto domain errors:
//   - no matching row             -> domain.ErrNotFound
//   - foreign key violation       -> domain.ErrReferentialIntegrity
//
// Departments are reference data; neither adapter writes to them.
package repo
