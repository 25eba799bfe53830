package netrate

import "strings"

// Exclusions names the interfaces that can never serve as the uplink.
// Loopback entries match exactly; VirtualPrefixes match by prefix. Both
// comparisons are case-sensitive. The table is data, not code, so a
// deployment with unusual adapters can override it from configuration.
type Exclusions struct {
	Loopback        []string
	VirtualPrefixes []string
}

// DefaultExclusions covers the loopbacks and locally-generated virtual
// adapters of typical macOS and Linux hosts.
func DefaultExclusions() Exclusions {
	return Exclusions{
		Loopback: []string{
			"lo",
			"lo0",
		},
		VirtualPrefixes: []string{
			// macOS
			"utun",   // VPN / Back to My Mac tunnels
			"awdl",   // Apple Wireless Direct Link
			"llw",    // low-latency WLAN (AWDL companion)
			"bridge", // Thunderbolt / internet sharing bridges
			"ap",     // Wi-Fi access-point mode
			"p2p",    // Wi-Fi Direct
			"gif",    // generic tunnel
			"stf",    // 6to4 tunnel
			"anpi",   // Apple debug bridge
			"vmenet", // Virtualization.framework NAT

			// Linux
			"docker",  // container bridge
			"br-",     // per-network docker bridges
			"veth",    // container peer devices
			"virbr",   // libvirt bridge
			"vmnet",   // VMware
			"vboxnet", // VirtualBox
			"tun",     // VPN tunnels
			"tap",     // VPN / VM taps
			"wg",      // WireGuard
			"dummy",   // kernel dummy devices
			"bond",    // link aggregation
			"flannel", // k8s overlay
			"cni",     // k8s CNI bridge
			"cali",    // Calico peers
		},
	}
}

// Excluded reports whether name is disqualified from uplink selection.
func (e Exclusions) Excluded(name string) bool {
	for _, lo := range e.Loopback {
		if name == lo {
			return true
		}
	}
	for _, prefix := range e.VirtualPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// SelectUplink picks the interface carrying the host's primary traffic.
// An interface named by the default route wins unconditionally: the
// routing table knows where packets leave the host, so a routed-but-idle
// or even routed-but-down interface still beats a busier candidate.
// Without a usable route, the busiest up, non-excluded interface wins,
// and ties keep the earliest entry in the snapshot's ordering. The false
// return means no uplink could be identified, which is a legitimate
// answer on air-gapped or fully virtual hosts, not an error.
func SelectUplink(snap Snapshot, route string, routeOK bool, excl Exclusions) (InterfaceRate, bool) {
	if routeOK {
		for _, ifc := range snap.Interfaces {
			if ifc.Name == route {
				return ifc, true
			}
		}
	}

	best := -1
	var bestRate float64
	for i, ifc := range snap.Interfaces {
		if !ifc.Up || excl.Excluded(ifc.Name) {
			continue
		}
		if total := ifc.RxBps + ifc.TxBps; best == -1 || total > bestRate {
			best = i
			bestRate = total
		}
	}
	if best == -1 {
		return InterfaceRate{}, false
	}
	return snap.Interfaces[best], true
}
