package sysinfo

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
)

// Unknown is reported for facts that could not be determined.
const Unknown = "unknown"

// Info holds host facts shown on the installer welcome page.
type Info struct {
	OS             string
	Kernel         string
	Architecture   string
	CPUCount       int
	MemoryTotal    uint64
	MemoryFree     uint64
	RootFree       uint64
	RootTotal      uint64
	Live           bool
	PackageManager string
}

var liveMarkers = []string{"/run/live", "/run/initramfs/live"}

var packageManagers = []string{"apt", "dnf", "pacman", "zypper"}

// Collector gathers Info. Fields are injectable for tests.
type Collector struct {
	Fs       afero.Fs
	LookPath func(file string) (string, error)
	RootPath string

	hostInfo   func(ctx context.Context) (*host.InfoStat, error)
	memory     func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	diskUsage  func(ctx context.Context, path string) (*disk.UsageStat, error)
	logicalCPU func(ctx context.Context) (int, error)
}

// NewCollector returns a Collector reading the real host.
func NewCollector() *Collector {
	return &Collector{
		Fs:         afero.NewOsFs(),
		LookPath:   exec.LookPath,
		RootPath:   "/",
		hostInfo:   host.InfoWithContext,
		memory:     mem.VirtualMemoryWithContext,
		diskUsage:  disk.UsageWithContext,
		logicalCPU: func(ctx context.Context) (int, error) { return cpu.CountsWithContext(ctx, true) },
	}
}

// Collect gathers every fact it can. The returned Info is always usable;
// err combines the probes that failed.
func (c *Collector) Collect(ctx context.Context) (Info, error) {
	info := Info{
		OS:             Unknown,
		Kernel:         Unknown,
		Architecture:   runtime.GOARCH,
		PackageManager: Unknown,
	}
	var errs error

	if c.hostInfo != nil {
		if h, err := c.hostInfo(ctx); err != nil {
			errs = multierr.Append(errs, err)
		} else {
			if name := strings.TrimSpace(h.Platform + " " + h.PlatformVersion); name != "" {
				info.OS = name
			}
			if h.KernelVersion != "" {
				info.Kernel = h.KernelVersion
			}
			if h.KernelArch != "" {
				info.Architecture = h.KernelArch
			}
		}
	}

	if c.memory != nil {
		if vm, err := c.memory(ctx); err != nil {
			errs = multierr.Append(errs, err)
		} else {
			info.MemoryTotal = vm.Total
			info.MemoryFree = vm.Available
		}
	}

	if c.diskUsage != nil {
		if u, err := c.diskUsage(ctx, c.RootPath); err != nil {
			errs = multierr.Append(errs, err)
		} else {
			info.RootFree = u.Free
			info.RootTotal = u.Total
		}
	}

	if c.logicalCPU != nil {
		if n, err := c.logicalCPU(ctx); err != nil {
			errs = multierr.Append(errs, err)
		} else {
			info.CPUCount = n
		}
	}

	info.Live = c.detectLive()
	info.PackageManager = c.detectPackageManager()

	return info, errs
}

func (c *Collector) detectLive() bool {
	if c.Fs == nil {
		return false
	}
	for _, p := range liveMarkers {
		if ok, _ := afero.DirExists(c.Fs, p); ok {
			return true
		}
	}
	cmdline, err := afero.ReadFile(c.Fs, "/proc/cmdline")
	if err != nil {
		return false
	}
	return strings.Contains(string(cmdline), "boot=live")
}

func (c *Collector) detectPackageManager() string {
	if c.LookPath == nil {
		return Unknown
	}
	for _, pm := range packageManagers {
		if _, err := c.LookPath(pm); err == nil {
			return pm
		}
	}
	return Unknown
}

// IsRoot reports whether the process runs with effective UID 0.
func IsRoot() bool {
	return os.Geteuid() == 0
}
