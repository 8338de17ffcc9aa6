package auth

import "strings"

// BearerToken returns the credential carried by an Authorization header value.
// An empty value means the header was not sent.
func BearerToken(header string) (string, error) {
	if header == "" {
		return "", errHeaderMissing()
	}

	parts := strings.Fields(header)
	switch {
	case len(parts) == 0:
		return "", errMalformedHeader("Authorization header is empty.")
	case !strings.EqualFold(parts[0], "bearer"):
		return "", errMalformedHeader(`Authorization header must start with "Bearer".`)
	case len(parts) == 1:
		return "", errMalformedHeader("Token not found.")
	case len(parts) > 2:
		return "", errMalformedHeader("Authorization header must be bearer token.")
	}

	return parts[1], nil
}
