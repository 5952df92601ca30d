package redis

import "fmt"

// Key prefix for all session data
const keyPrefix = "soalpich"

// tokenKey returns the Redis key for a session's bearer token
func tokenKey(sessionID string) string {
	return fmt.Sprintf("%s:token:%s", keyPrefix, sessionID)
}
