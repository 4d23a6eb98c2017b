package validators

import (
	"net"
	"net/mail"
	"strings"
)

// IsEmailDomainValid checks the address shape and that the domain resolves.
// DNS lookups keep obviously fake registration emails out; transient DNS
// failures reject the address, which is acceptable for a back-office signup.
func IsEmailDomainValid(email string) bool {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return false
	}

	at := strings.LastIndex(addr.Address, "@")
	if at < 0 {
		return false
	}

	domain := strings.ToLower(addr.Address[at+1:])
	if !strings.Contains(domain, ".") {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
