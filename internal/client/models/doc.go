// Package models defines client-side data models used by the satellite
// account console: the user profile record, the partial profile sent on
// update, and the uniform response envelope returned by every remote call.
package models
