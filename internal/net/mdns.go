package net

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/mdns"

	"LocalSketch/internal/logging"
)

// ServiceType is the mDNS service LocalSketch preview servers announce.
const ServiceType = "_localsketch._tcp"

// Advertise announces a preview server on port to the local network. The
// caller must Shutdown the returned server.
func Advertise(port int) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}

	info := []string{"LocalSketch preview", "path=/"}
	service, err := mdns.NewMDNSService(host, ServiceType, "", "", port, nil, info)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	logging.Logger().Info("[MDNS] advertising", "service", ServiceType, "host", host, "port", port)
	return server, nil
}

// Browse looks for preview servers for the given duration and calls found
// with each one's host:port.
func Browse(timeout time.Duration, found func(addr string)) error {
	entries := make(chan *mdns.ServiceEntry, 8)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for e := range entries {
			if e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			found(fmt.Sprintf("%s:%d", e.AddrV4.String(), e.Port))
		}
	}()

	params := mdns.DefaultParams(ServiceType)
	params.Entries = entries
	params.Timeout = timeout
	params.DisableIPv6 = true
	err := mdns.Query(params)
	close(entries)
	<-done
	if err != nil {
		return fmt.Errorf("mDNS browse: %w", err)
	}
	return nil
}
