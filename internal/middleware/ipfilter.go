// SPDX-License-Identifier: MIT
package middleware

import (
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IPAllowlistMiddleware restricts requests to the given CIDR ranges. Bare
// addresses are accepted as single-host ranges; an empty list allows all.
func IPAllowlistMiddleware(allowed []string, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}

	nets := make([]*net.IPNet, 0, len(allowed))
	for _, cidr := range allowed {
		if ip := net.ParseIP(cidr); ip != nil {
			bits := 8 * len(ip.To16())
			if ip.To4() != nil {
				ip, bits = ip.To4(), 32
			}
			nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			log.Warn("Ignoring invalid allowlist entry", zap.String("entry", cidr))
			continue
		}
		nets = append(nets, ipNet)
	}

	return func(c *gin.Context) {
		if len(nets) == 0 {
			c.Next()
			return
		}

		clientIP := net.ParseIP(c.ClientIP())
		if clientIP != nil {
			for _, n := range nets {
				if n.Contains(clientIP) {
					c.Next()
					return
				}
			}
		}

		log.Debug("Blocked admin request", zap.String("ip", c.ClientIP()))
		c.AbortWithStatus(http.StatusForbidden)
	}
}
