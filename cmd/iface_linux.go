//go:build linux

package cmd

import (
	"net"
	"time"

	"github.com/vanterra-net/mospfd/netio"
	"github.com/vanterra-net/mospfd/state"
)

func openInterface(ic state.IfaceCfg, helloInterval time.Duration) (netio.Interface, error) {
	iface, err := net.InterfaceByName(ic.Name)
	if err != nil {
		return nil, err
	}
	addrs, err := iface.Addrs()
	if err != nil {
		return nil, err
	}
	var ip net.IP
	var mask net.IPMask
	for _, a := range addrs {
		if ipnet, ok := a.(*net.IPNet); ok && ipnet.IP.To4() != nil {
			ip, mask = ipnet.IP.To4(), ipnet.Mask
			break
		}
	}
	return netio.NewRawInterface(ic.Name, ip, mask, iface.HardwareAddr, helloInterval)
}
