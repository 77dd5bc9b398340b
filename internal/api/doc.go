// Package api provides the HTTP handlers for the Taskhive API.
//
// Handlers decode and validate JSON request bodies, extract the
// authenticated user from the request context, delegate to the service
// layer, and translate service errors into sanitized HTTP responses via
// MapErrorToStatusCode and GetSafeErrorMessage. Authorization decisions
// live in the service layer, not here.
package api
