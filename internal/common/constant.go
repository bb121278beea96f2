package common

const (
	// AuthorizationHeaderName is the HTTP header carrying the bearer token
	// on authenticated requests.
	AuthorizationHeaderName = "Authorization"

	// TokenStorageKey and UserStorageKey are the two durable credential
	// entries kept in the local store. They mirror the keys the web client
	// of the same service uses in browser storage.
	TokenStorageKey = "authToken"
	UserStorageKey  = "user"
)
