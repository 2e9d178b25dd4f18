// SPDX-License-Identifier: MIT
package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// IPFilterMiddleware rejects requests from addresses in the blocklist.
// Entries are CIDR ranges or single IPs; invalid entries are skipped.
func IPFilterMiddleware(blocklist []string) gin.HandlerFunc {
	blocked := make([]*net.IPNet, 0, len(blocklist))
	for _, entry := range blocklist {
		entry = strings.TrimSpace(entry)
		if !strings.Contains(entry, "/") {
			if ip := net.ParseIP(entry); ip != nil {
				bits := 32
				if ip.To4() == nil {
					bits = 128
				}
				blocked = append(blocked, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			}
			continue
		}
		if _, ipNet, err := net.ParseCIDR(entry); err == nil {
			blocked = append(blocked, ipNet)
		}
	}

	return func(c *gin.Context) {
		if len(blocked) == 0 {
			c.Next()
			return
		}

		clientIP := net.ParseIP(getClientIP(c))
		if clientIP == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		for _, ipNet := range blocked {
			if ipNet.Contains(clientIP) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
				return
			}
		}

		c.Next()
	}
}
