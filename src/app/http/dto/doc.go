// Package dto contains Data Transfer Objects for HTTP requests and responses.
//
// DTOs are separate from domain entities to:
//   - Control what data is exposed in the API
//   - Handle JSON serialization/deserialization (camelCase keys, YYYY-MM-DD dates)
//   - Keep wire quirks out of the core
//
// Naming convention:
//   - Request types: <Resource>Request (e.g., EmployeeRequest)
//   - Response types: <Resource>Response (e.g., EmployeeResponse)
package dto
