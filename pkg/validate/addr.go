package validate

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// daemonTypes are the entity types a daemon name may carry.
var daemonTypes = map[string]bool{
	"auth":   true,
	"mon":    true,
	"osd":    true,
	"mds":    true,
	"mgr":    true,
	"client": true,
}

// Pgid accepts a placement-group id of the form <poolnum>.<hex id>,
// e.g. "0.5a".
type Pgid struct{}

func (Pgid) Validate(v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%v is not a string", v)
	}
	pool, id, found := strings.Cut(s, ".")
	if !found || pool == "" || id == "" {
		return fmt.Errorf("%q is not a pgid (expected <poolnum>.<hexid>)", s)
	}
	if _, err := strconv.ParseUint(pool, 10, 64); err != nil {
		return fmt.Errorf("%q is not a pgid: pool %q is not a nonnegative int", s, pool)
	}
	for _, r := range id {
		if !isHex(r) {
			return fmt.Errorf("%q is not a pgid: id %q is not hex", s, id)
		}
	}
	return nil
}

func (Pgid) String() string { return "pgid (<poolnum>.<hexid>)" }

// Name accepts a daemon or entity name of the form <type>.<id>, where
// type is one of auth|mon|osd|mds|mgr|client, or a bare osd id.
type Name struct{}

func (Name) Validate(v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%v is not a string", v)
	}
	if isNonNegativeInt(s) {
		return nil
	}
	typ, id, found := strings.Cut(s, ".")
	if !found || !daemonTypes[typ] || id == "" {
		return fmt.Errorf("%q is not a valid daemon name (expected <type>.<id>)", s)
	}
	return nil
}

func (Name) String() string { return "name (<type>.<id>)" }

// OsdName accepts "osd.<n>" or a bare nonnegative osd id.
type OsdName struct{}

func (OsdName) Validate(v any) error {
	s, ok := v.(string)
	if !ok {
		if _, isInt := asInt64(v); isInt {
			return Int{Min: ptrInt64(0)}.Validate(v)
		}
		return fmt.Errorf("%v is not a string", v)
	}
	id := strings.TrimPrefix(s, "osd.")
	if !isNonNegativeInt(id) {
		return fmt.Errorf("%q is not a valid osd name (expected osd.<id> or <id>)", s)
	}
	return nil
}

func (OsdName) String() string { return "osd name (osd.<id> or <id>)" }

// UUID accepts the canonical hyphenated UUID form only.
type UUID struct{}

func (UUID) Validate(v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%v is not a string", v)
	}
	if len(s) != 36 {
		return fmt.Errorf("%q is not a uuid", s)
	}
	if _, err := uuid.Parse(s); err != nil {
		return fmt.Errorf("%q is not a uuid", s)
	}
	return nil
}

func (UUID) String() string { return "uuid" }

// IPAddr accepts an IPv4 or IPv6 literal with an optional port and an
// optional "/nonce" suffix: "1.2.3.4", "1.2.3.4:6789",
// "[2001:db8::1]:6789/12345".
type IPAddr struct{}

func (IPAddr) Validate(v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%v is not a string", v)
	}
	if err := parseAddr(s); err != nil {
		return fmt.Errorf("%q is not a valid address: %v", s, err)
	}
	return nil
}

func (IPAddr) String() string { return "addr (ip[:port][/nonce])" }

// EntityAddr accepts either an IPAddr or a daemon Name; several mon
// commands take one or the other in the same position.
type EntityAddr struct{}

func (EntityAddr) Validate(v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%v is not a string", v)
	}
	if parseAddr(s) == nil {
		return nil
	}
	if (Name{}).Validate(s) == nil {
		return nil
	}
	return fmt.Errorf("%q is neither an address nor a daemon name", s)
}

func (EntityAddr) String() string { return "entity addr (ip[:port][/nonce] or <type>.<id>)" }

func parseAddr(s string) error {
	if s == "" {
		return fmt.Errorf("empty")
	}
	// optional trailing /nonce
	if host, nonce, found := strings.Cut(s, "/"); found {
		if !isNonNegativeInt(nonce) {
			return fmt.Errorf("nonce %q is not a nonnegative int", nonce)
		}
		s = host
	}
	var host, port string
	switch {
	case strings.HasPrefix(s, "["):
		// bracketed IPv6, optionally with port
		var err error
		host, port, err = net.SplitHostPort(s)
		if err != nil {
			host = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
			if strings.Contains(host, "]") || !strings.HasSuffix(s, "]") {
				return fmt.Errorf("malformed bracketed address")
			}
		}
	case strings.Count(s, ":") > 1:
		// bare IPv6, no port possible
		host = s
	case strings.Contains(s, ":"):
		var err error
		host, port, err = net.SplitHostPort(s)
		if err != nil {
			return err
		}
	default:
		host = s
	}
	if net.ParseIP(host) == nil {
		return fmt.Errorf("%q is not an ip literal", host)
	}
	if port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p < 0 || p > 65535 {
			return fmt.Errorf("port %q out of range", port)
		}
	}
	return nil
}

func isHex(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isNonNegativeInt(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}

func ptrInt64(n int64) *int64 { return &n }
