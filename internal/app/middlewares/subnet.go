package middlewares

import (
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/TonySyv/yshstob/internal/app/config"
)

// IPNet is the parsed form of the trusted CIDR specified in config.
var IPNet *net.IPNet

func resolveIP(r *http.Request) (net.IP, error) {
	ipStr := r.Header.Get("X-Real-IP")
	ip := net.ParseIP(ipStr)
	if ip == nil {
		ips := r.Header.Get("X-Forwarded-For")
		ipStrs := strings.Split(ips, ",")
		ip = net.ParseIP(strings.TrimSpace(ipStrs[0]))
	}
	if ip != nil {
		return ip, nil
	}
	addr := r.RemoteAddr
	hostStr, _, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}
	ip = net.ParseIP(hostStr)
	if ip == nil {
		return nil, fmt.Errorf("invalid IP address: %s", hostStr)
	}
	return ip, nil
}

// CheckSubnet rejects internal requests arriving from outside the trusted
// subnet. The check is skipped while no subnet is configured.
func CheckSubnet(next http.Handler) http.Handler {
	fn := func(writer http.ResponseWriter, request *http.Request) {
		if config.Settings.TrustedSubnet == "" {
			next.ServeHTTP(writer, request)
			return
		} else if IPNet == nil {
			_, IPNet, _ = net.ParseCIDR(config.Settings.TrustedSubnet)
		}

		address, err := resolveIP(request)
		if err != nil || address == nil {
			http.Error(writer, "Unexpected error during IP parsing", http.StatusForbidden)
			return
		}

		if !IPNet.Contains(address) {
			http.Error(writer, "IP address not in trusted subnet", http.StatusForbidden)
			return
		}

		next.ServeHTTP(writer, request)
	}
	return http.HandlerFunc(fn)
}
