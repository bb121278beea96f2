// Package api implements the HTTP+JSON client for the phone-resale
// marketplace backend.
//
// The Client interface is the seam the rest of the application depends on;
// HTTPClient is the production implementation. Error mapping follows a fixed
// taxonomy: transport failures wrap common.ErrUnavailable, non-2xx responses
// become *ServerError (401 additionally matches common.ErrorUnauthorized via
// errors.Is), and success bodies are shape-checked at the boundary.
package api
