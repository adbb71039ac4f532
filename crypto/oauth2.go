package crypto

// The OAuth2 specification (RFC 6749) doesn't mandate a specific length for
// the state parameter, only a random, unguessable string. 32 characters is
// common for better uniqueness and security.
const Oauth2StateLength = 32

// Oauth2State returns a URL-safe random state linking an authorization
// request to its callback, preventing CSRF on the redirect.
func Oauth2State() string {
	return RandomString(Oauth2StateLength, AlphanumericAlphabet)
}
