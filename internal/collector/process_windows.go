//go:build windows

package collector

import (
	"context"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

func countProcesses(ctx context.Context) (int, error) {
	handle, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return 0, fmt.Errorf("process snapshot: %w", err)
	}
	defer windows.CloseHandle(handle)

	var pe32 windows.ProcessEntry32
	pe32.Size = uint32(unsafe.Sizeof(pe32))

	count := 0
	if err := windows.Process32First(handle, &pe32); err == nil {
		count++
		for windows.Process32Next(handle, &pe32) == nil {
			count++
		}
	}

	return count, nil
}
