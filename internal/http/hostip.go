package http

import "net"

// preferredHostIP picks the IPv4 address most likely to reach this
// machine on its LAN, for the startup log. Returns "" when no usable
// address exists.
func preferredHostIP() string {
	ifaces, err := net.Interfaces()
	if err != nil {
		return ""
	}

	var best net.IP
	bestRank := -1
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ip := addrIPv4(addr)
			if ip == nil {
				continue
			}
			if r := lanRank(ip); r > bestRank {
				best = ip
				bestRank = r
			}
		}
	}
	if best == nil {
		return ""
	}
	return best.String()
}

func addrIPv4(addr net.Addr) net.IP {
	var ip net.IP
	switch a := addr.(type) {
	case *net.IPNet:
		ip = a.IP
	case *net.IPAddr:
		ip = a.IP
	default:
		return nil
	}
	ip = ip.To4()
	if ip == nil || ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() {
		return nil
	}
	return ip
}

// lanRank orders candidates: the 192.168.1.x home subnet first, then
// other 192.168 nets, then the remaining private ranges, then
// everything else. Ties keep the earliest interface.
func lanRank(ip net.IP) int {
	switch {
	case ip[0] == 192 && ip[1] == 168 && ip[2] == 1:
		return 3
	case ip[0] == 192 && ip[1] == 168:
		return 2
	case ip[0] == 10, ip[0] == 172 && ip[1] >= 16 && ip[1] <= 31:
		return 1
	default:
		return 0
	}
}
