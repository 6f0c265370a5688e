package net

import (
	"fmt"
	"net"
	"strconv"

	"LocalSketch/internal/logging"
)

// OutgoingIP returns the address this machine uses to reach other hosts,
// which is the one viewers on the same network can dial back. Without a
// route it picks the first non-loopback IPv4 interface address, and then
// loopback.
func OutgoingIP() string {
	if conn, err := net.Dial("udp", "8.8.8.8:80"); err == nil {
		defer conn.Close()
		if udp, ok := conn.LocalAddr().(*net.UDPAddr); ok {
			return udp.IP.String()
		}
	}
	addrs, err := net.InterfaceAddrs()
	if err == nil {
		if ip, ok := firstIPv4(addrs); ok {
			return ip
		}
	}
	logging.Logger().Warn("[NET] no usable interface address, sharing loopback", "err", err)
	return "127.0.0.1"
}

func firstIPv4(addrs []net.Addr) (string, bool) {
	for _, a := range addrs {
		ipnet, ok := a.(*net.IPNet)
		if !ok || ipnet.IP.IsLoopback() || ipnet.IP.To4() == nil {
			continue
		}
		return ipnet.IP.String(), true
	}
	return "", false
}

// Port extracts the numeric port from a listen address such as ":8888".
func Port(addr string) (int, error) {
	_, p, err := net.SplitHostPort(addr)
	if err != nil {
		return 0, fmt.Errorf("parse listen address %q: %w", addr, err)
	}
	port, err := strconv.Atoi(p)
	if err != nil {
		return 0, fmt.Errorf("parse port %q: %w", p, err)
	}
	return port, nil
}

// ShareURL returns the address viewers should open for a server listening
// on addr. A listen address without a specific host is shared under the
// outgoing IP.
func ShareURL(addr string) (string, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return "", fmt.Errorf("parse listen address %q: %w", addr, err)
	}
	port, err := Port(addr)
	if err != nil {
		return "", err
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = OutgoingIP()
	}
	return fmt.Sprintf("http://%s/", net.JoinHostPort(host, strconv.Itoa(port))), nil
}
