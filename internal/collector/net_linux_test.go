//go:build linux

package collector

import (
	"strings"
	"testing"
)

const sampleNetDev = `Inter-|   Receive                                                |  Transmit
 face |bytes    packets errs drop fifo frame compressed multicast|bytes    packets errs drop fifo colls carrier compressed
    lo:    4060      46    0    0    0     0          0         0     4060      46    0    0    0     0       0          0
  eth0: 5676631    7424    0    0    0     0          0         0   843917    5860    0    0    0     0       0          0
docker0:       0       0    0    0    0     0          0         0        0       0    0    0    0     0       0          0
`

func TestParseNetDevFrom(t *testing.T) {
	reading, err := parseNetDevFrom(strings.NewReader(sampleNetDev))
	if err != nil {
		t.Fatalf("parseNetDevFrom: %v", err)
	}

	if len(reading) != 3 {
		t.Fatalf("got %d interfaces, want 3", len(reading))
	}

	eth0, ok := reading["eth0"]
	if !ok {
		t.Fatal("eth0 missing from reading")
	}
	if eth0.RxBytes != 5676631 {
		t.Errorf("eth0.RxBytes = %d, want 5676631", eth0.RxBytes)
	}
	if eth0.TxBytes != 843917 {
		t.Errorf("eth0.TxBytes = %d, want 843917", eth0.TxBytes)
	}

	lo, ok := reading["lo"]
	if !ok {
		t.Fatal("lo missing from reading")
	}
	if lo.RxBytes != 4060 || lo.TxBytes != 4060 {
		t.Errorf("lo counters = %d/%d, want 4060/4060", lo.RxBytes, lo.TxBytes)
	}
}

func TestParseNetDevFromSkipsMalformed(t *testing.T) {
	input := `Inter-|   Receive                                                |  Transmit
 face |bytes    packets errs drop fifo frame compressed multicast|bytes
  eth0: 100 1 0 0
  eth1: 200 2 0 0 0 0 0 0 300 3 0 0 0 0 0 0
`

	reading, err := parseNetDevFrom(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parseNetDevFrom: %v", err)
	}

	if _, ok := reading["eth0"]; ok {
		t.Error("eth0 has too few fields and should be skipped")
	}
	if c, ok := reading["eth1"]; !ok || c.RxBytes != 200 || c.TxBytes != 300 {
		t.Errorf("eth1 = %+v, want Rx 200 Tx 300", c)
	}
}

const sampleRouteTable = `Iface	Destination	Gateway 	Flags	RefCnt	Use	Metric	Mask		MTU	Window	IRTT
eth0	00000000	0102A8C0	0003	0	0	100	00000000	0	0	0
eth0	0002A8C0	00000000	0001	0	0	100	00FFFFFF	0	0	0
`

func TestParseRouteFrom(t *testing.T) {
	iface, ok := parseRouteFrom(strings.NewReader(sampleRouteTable))
	if !ok {
		t.Fatal("expected a default route")
	}
	if iface != "eth0" {
		t.Errorf("default route interface = %q, want eth0", iface)
	}
}

func TestParseRouteFromNoDefault(t *testing.T) {
	input := `Iface	Destination	Gateway 	Flags	RefCnt	Use	Metric	Mask		MTU	Window	IRTT
eth0	0002A8C0	00000000	0001	0	0	100	00FFFFFF	0	0	0
`

	if iface, ok := parseRouteFrom(strings.NewReader(input)); ok {
		t.Errorf("got default route %q, want none", iface)
	}
}

func TestParseRouteFromSkipsDownRoutes(t *testing.T) {
	input := `Iface	Destination	Gateway 	Flags	RefCnt	Use	Metric	Mask		MTU	Window	IRTT
eth9	00000000	0102A8C0	0000	0	0	100	00000000	0	0	0
wlan0	00000000	0102A8C0	0003	0	0	600	00000000	0	0	0
`

	iface, ok := parseRouteFrom(strings.NewReader(input))
	if !ok || iface != "wlan0" {
		t.Errorf("got %q/%v, want wlan0 from the first up default route", iface, ok)
	}
}
