// Package render turns a snapshot into plain text. The renderer is a
// pure function of its inputs: screen clearing and line width are
// explicit options decided by the caller, never probed from the
// environment here. Absent metrics show an "n/a" placeholder with the
// probe's note and are never coerced to zero.
package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/nhdewitt/hostsnap/internal/format"
	"github.com/nhdewitt/hostsnap/internal/snapshot"
)

// Options control presentation, not content.
type Options struct {
	// Clear prefixes the output with an ANSI clear-and-home sequence.
	Clear bool
	// Width truncates lines longer than this many runes. Zero means
	// unlimited. Truncation keeps a clear-and-redraw loop from
	// scrolling when a line would wrap.
	Width int
}

const clearSequence = "\033[2J\033[H"

// Render writes the snapshot to w. Identical snapshots and options
// always produce identical bytes.
func Render(w io.Writer, snap snapshot.Snapshot, opts Options) error {
	var b strings.Builder

	fmt.Fprintf(&b, "hostsnap @ %s\n\n", snap.TakenAt.Format("2006-01-02 15:04:05"))
	writeHost(&b, snap)
	b.WriteString("\n")
	writeCPU(&b, snap)
	writeMemory(&b, snap)
	writeDisk(&b, snap)
	b.WriteString("\n")
	writeNetwork(&b, snap)
	writeUplink(&b, snap)
	b.WriteString("\n")
	writeContainers(&b, snap)

	out := b.String()
	if opts.Width > 0 {
		out = clampLines(out, opts.Width)
	}
	if opts.Clear {
		out = clearSequence + out
	}

	_, err := io.WriteString(w, out)
	return err
}

// orNA renders a field through f, or the placeholder with the probe's
// note when the field is absent.
func orNA[T any](field snapshot.Field[T], f func(T) string) string {
	if field.OK {
		return f(field.Value)
	}
	if field.Note == "" {
		return "n/a"
	}
	return "n/a (" + field.Note + ")"
}

func writeHost(b *strings.Builder, snap snapshot.Snapshot) {
	if !snap.Host.OK {
		fmt.Fprintf(b, "Host: n/a (%s)\n", snap.Host.Note)
	} else {
		h := snap.Host.Value
		if h.FQDN != "" && h.FQDN != h.Hostname {
			fmt.Fprintf(b, "Host: %s (%s)\n", h.Hostname, h.FQDN)
		} else {
			fmt.Fprintf(b, "Host: %s\n", h.Hostname)
		}
		fmt.Fprintf(b, "OS:   %s %s  %s  %s\n", h.OSName, h.OSVersion, h.Kernel, h.Machine)

		physical := "n/a"
		if h.PhysicalCPUs != nil {
			physical = fmt.Sprintf("%d", *h.PhysicalCPUs)
		}
		fmt.Fprintf(b, "CPU:  physical=%s logical=%d SMT=%s\n", physical, h.LogicalCPUs, snap.SMT)
	}

	up := orNA(snap.UptimeSeconds, format.Uptime)
	procs := orNA(snap.Processes, func(n int) string { return fmt.Sprintf("%d", n) })
	fmt.Fprintf(b, "Up:   %s  procs=%s\n", up, procs)
}

func writeCPU(b *strings.Builder, snap snapshot.Snapshot) {
	if !snap.CPU.OK {
		fmt.Fprintf(b, "CPU:  n/a (%s)\n", snap.CPU.Note)
		return
	}

	c := snap.CPU.Value
	if c.Load == nil {
		fmt.Fprintf(b, "CPU:  %s  health=%s\n", format.Percent(c.BusyPercent), c.Health)
		return
	}

	norm := "n/a"
	if c.LoadPerCPU != nil {
		norm = fmt.Sprintf("%.0f%%", *c.LoadPerCPU*100)
	}
	fmt.Fprintf(b, "CPU:  %s  loadavg=%.2f %.2f %.2f  load_norm(1m)=%s  health=%s\n",
		format.Percent(c.BusyPercent), c.Load.Load1, c.Load.Load5, c.Load.Load15, norm, c.Health)
}

func writeMemory(b *strings.Builder, snap snapshot.Snapshot) {
	if !snap.Memory.OK {
		fmt.Fprintf(b, "Mem:  n/a (%s)\n", snap.Memory.Note)
		return
	}

	m := snap.Memory.Value
	fmt.Fprintf(b, "Mem:  %s  used=%s  avail=%s  total=%s\n",
		format.Percent(m.UsedPercent), format.Bytes(m.Used), format.Bytes(m.Available), format.Bytes(m.Total))

	if m.SwapTotal == 0 {
		b.WriteString("Swap: none\n")
		return
	}
	fmt.Fprintf(b, "Swap: %s  used=%s  free=%s  total=%s\n",
		format.Percent(m.SwapPercent), format.Bytes(m.SwapUsed), format.Bytes(m.SwapFree), format.Bytes(m.SwapTotal))
}

func writeDisk(b *strings.Builder, snap snapshot.Snapshot) {
	if !snap.Disk.OK {
		fmt.Fprintf(b, "Disk: n/a (%s)\n", snap.Disk.Note)
		return
	}

	d := snap.Disk.Value
	fmt.Fprintf(b, "Disk: %s  used=%s  free=%s  total=%s  (%s)\n",
		format.Percent(d.UsedPercent), format.Bytes(d.Used), format.Bytes(d.Free), format.Bytes(d.Total), d.Path)
}

func writeNetwork(b *strings.Builder, snap snapshot.Snapshot) {
	if !snap.Network.OK {
		fmt.Fprintf(b, "Net:  n/a (%s)\n", snap.Network.Note)
		return
	}

	n := snap.Network.Value
	fmt.Fprintf(b, "Net over %.1fs:\n", n.SampleSeconds)

	if len(n.Interfaces) == 0 {
		b.WriteString("  (no interfaces)\n")
	}

	nameW := 0
	for _, ifc := range n.Interfaces {
		if len(ifc.Name) > nameW {
			nameW = len(ifc.Name)
		}
	}
	for _, ifc := range n.Interfaces {
		state := "down"
		if ifc.Up {
			state = "up"
		}
		speed := "-"
		if ifc.SpeedMbps != nil {
			speed = fmt.Sprintf("%d Mb/s", *ifc.SpeedMbps)
		}
		fmt.Fprintf(b, "  %-*s  %-4s  %9s  rx %s  tx %s\n",
			nameW, ifc.Name, state, speed, format.Rate(ifc.RxBps), format.Rate(ifc.TxBps))
	}

	fmt.Fprintf(b, "Total: rx %s  tx %s\n", format.Rate(n.TotalRxBps), format.Rate(n.TotalTxBps))
}

func writeUplink(b *strings.Builder, snap snapshot.Snapshot) {
	if !snap.Uplink.OK {
		fmt.Fprintf(b, "Link: n/a (%s)\n", snap.Uplink.Note)
		return
	}

	u := snap.Uplink.Value
	fmt.Fprintf(b, "Link: %s  rx %s  tx %s\n", u.Name, format.Rate(u.RxBps), format.Rate(u.TxBps))
}

func writeContainers(b *strings.Builder, snap snapshot.Snapshot) {
	if !snap.Containers.OK {
		fmt.Fprintf(b, "Containers: n/a (%s)\n", snap.Containers.Note)
		return
	}

	list := snap.Containers.Value
	if len(list) == 0 {
		b.WriteString("Containers: none\n")
		return
	}

	names := make([]string, len(list))
	for i, c := range list {
		names[i] = c.Name
	}
	fmt.Fprintf(b, "Containers: %d  %s\n", len(list), strings.Join(names, ", "))
}

func clampLines(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if utf8.RuneCountInString(line) <= width {
			continue
		}
		r := []rune(line)
		lines[i] = string(r[:width])
	}
	return strings.Join(lines, "\n")
}
