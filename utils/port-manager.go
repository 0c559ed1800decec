package utils

import (
	"fmt"
	"net"
	"strconv"
)

// SplitListenAddress parses "host:port", ":port" or a bare port. An empty
// host means all interfaces.
func SplitListenAddress(addr string) (string, int, error) {
	if port, err := strconv.Atoi(addr); err == nil {
		return "", port, nil
	}

	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid listen address %q: %w", addr, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid port in %q", addr)
	}
	return host, port, nil
}

func IsPortAvailable(host string, port int) bool {
	Verbose("Checking if port %d is available on %s", port, host)
	if host == "localhost" {
		host = "127.0.0.1"
	}

	listener, err := net.ListenTCP("tcp4", &net.TCPAddr{IP: net.ParseIP(host), Port: port})
	if err != nil {
		Verbose("error: %v", err)
		return false
	}

	defer listener.Close()
	return true
}

// CheckListenAddress reports an error when addr cannot be bound.
func CheckListenAddress(addr string) error {
	host, port, err := SplitListenAddress(addr)
	if err != nil {
		return err
	}

	if !IsPortAvailable(host, port) {
		return fmt.Errorf("port %d is not available on %s", port, addr)
	}
	return nil
}
