package tiller

import (
	"fmt"
	"strings"

	"github.com/blang/semver"
)

// CheckCompatible reports whether a client speaking clientVersion can drive a
// release service at serverVersion. Tiller accepts clients of the same
// major.minor line only.
func CheckCompatible(clientVersion, serverVersion string) error {
	client, err := parseVersion(clientVersion)
	if err != nil {
		return fmt.Errorf("parse client version %q: %w", clientVersion, err)
	}

	server, err := parseVersion(serverVersion)
	if err != nil {
		return fmt.Errorf("parse server version %q: %w", serverVersion, err)
	}

	if client.Major != server.Major || client.Minor != server.Minor {
		return fmt.Errorf("%w: client %s, server %s", ErrIncompatibleVersion, client, server)
	}

	return nil
}

func parseVersion(v string) (semver.Version, error) {
	return semver.Parse(strings.TrimPrefix(strings.TrimSpace(v), "v"))
}
