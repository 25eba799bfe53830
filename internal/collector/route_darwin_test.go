//go:build darwin

package collector

import "testing"

const sampleRouteGet = `   route to: default
destination: default
       mask: default
    gateway: 192.168.1.1
  interface: en0
      flags: <UP,GATEWAY,DONE,STATIC,PRCLONING,GLOBAL>
 recvpipe  sendpipe  ssthresh  rtt,msec    rttvar  hopcount      mtu     expire
       0         0         0         0         0         0      1500         0
`

func TestParseRouteGet(t *testing.T) {
	iface, ok := parseRouteGet([]byte(sampleRouteGet))
	if !ok {
		t.Fatal("expected an interface from route output")
	}
	if iface != "en0" {
		t.Errorf("interface = %q, want en0", iface)
	}
}

func TestParseRouteGetNoInterface(t *testing.T) {
	out := "route to: default\ndestination: default\n"

	if iface, ok := parseRouteGet([]byte(out)); ok {
		t.Errorf("got %q, want no interface from output without one", iface)
	}
}
