package disk

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func luksLvmSnapshot() *SystemDiskInfo {
	return &SystemDiskInfo{
		Disks: []PhysicalDisk{{
			Path:      "/dev/vda",
			SizeBytes: 20 * gib,
			Partitions: []Partition{{
				Path:      "/dev/vda1",
				FsType:    "crypto_LUKS",
				SizeBytes: 20 * gib,
				Content: LuksContainer{
					UUID:       "u1",
					MappedName: "cryptroot",
					Mapped: MappedLvmPhysicalVolume{PV: LvmPhysicalVolumeData{
						Path:   "/dev/mapper/cryptroot",
						PVUUID: "pv1",
						VGName: "vg0",
					}},
				},
			}},
		}},
	}
}

func TestBuildDisplayListLuksLvm(t *testing.T) {
	items := BuildDisplayList(luksLvmSnapshot())
	if len(items) != 4 {
		t.Fatalf("len(items) = %d, want 4", len(items))
	}

	want := []struct {
		typ        ItemType
		selectable bool
		id         string
	}{
		{ItemDisk, false, "/dev/vda"},
		{ItemPartition, true, "/dev/vda1"},
		{ItemLuksContainer, false, "/dev/vda1/luks/u1"},
		{ItemLvmPhysicalVolume, false, "/dev/vda1/luks/u1/lvm_pv/pv1"},
	}
	seen := map[string]bool{}
	for i, w := range want {
		got := items[i]
		if got.Type != w.typ || got.Selectable != w.selectable || got.IDPath != w.id {
			t.Errorf("items[%d] = {%v %v %q}, want {%v %v %q}", i, got.Type, got.Selectable, got.IDPath, w.typ, w.selectable, w.id)
		}
		if seen[got.IDPath] {
			t.Errorf("duplicate IDPath %q", got.IDPath)
		}
		seen[got.IDPath] = true
	}

	// Each child is prefixed by its parent, except the disk/partition pair
	// which uses device paths.
	for i := 2; i < len(items); i++ {
		if !strings.HasPrefix(items[i].IDPath, items[i-1].IDPath) {
			t.Errorf("items[%d].IDPath = %q not prefixed by %q", i, items[i].IDPath, items[i-1].IDPath)
		}
	}
}

func TestBuildDisplayListSample(t *testing.T) {
	items := BuildDisplayList(SampleSnapshot())

	wantIDs := []string{
		"/dev/sda",
		"/dev/sda1",
		"/dev/sda2",
		"/dev/sda2/luks/luks-uuid-sda2",
		"/dev/sda2/luks/luks-uuid-sda2/lvm_pv/lvm-pv-uuid-on-cr_lvm",
		"/dev/sdb",
		"/dev/sdb1",
		"/dev/sdb2",
		"/dev/sdb2/unallocated",
		"/dev/nvme0n1",
		"/dev/nvme0n1p1",
		"/dev/nvme0n1p2",
		"/dev/nvme0n1p2/direct_lvm_pv/lvm-pv-uuid-on-nvme",
		LvmSectionID,
		"lvm_vg/vg_system",
		"/dev/vg_system/lv_root",
		"/dev/vg_system/lv_home",
		"lvm_vg/vg_data",
		"/dev/vg_data/lv_games",
	}
	if len(items) != len(wantIDs) {
		t.Fatalf("len(items) = %d, want %d", len(items), len(wantIDs))
	}
	for i, id := range wantIDs {
		if items[i].IDPath != id {
			t.Errorf("items[%d].IDPath = %q, want %q", i, items[i].IDPath, id)
		}
	}

	texts := map[string]string{
		"/dev/sda":   "💾 /dev/sda (Samsung SSD 970 EVO, 250.00 GB)",
		"/dev/sda1":  "  └─ 📄 /dev/sda1 (512.00 MB, vfat, 'EFI System Partition', at '/boot/efi')",
		"/dev/sdb1":  "  └─ 📄 /dev/sdb1 (500.00 GB, ntfs, 'WindowsData')",
		LvmSectionID: "📦 LVM Volume Groups:",
		"/dev/sda2/luks/luks-uuid-sda2":                     "    └─ 🔒 LUKS Container (luks-uuid-sda2)  cr_lvm",
		"/dev/nvme0n1p2/direct_lvm_pv/lvm-pv-uuid-on-nvme": "    └─ 📦 LVM PV (for VG: vg_data)",
		"/dev/vg_system/lv_root":                            "  └─ 🗛 lv_root (100.00 GB, ext4, at '/') (Current System Root)",
		"/dev/vg_data/lv_games":                             "  └─ 🗛 lv_games (480.00 GB, btrfs, at '/mnt/games')",
		"lvm_vg/vg_data":                                    "vg_data (480.00 GB, 0 B free, PVs: /dev/nvme0n1p2)",
	}
	for _, it := range items {
		if want, ok := texts[it.IDPath]; ok && it.DisplayText != want {
			t.Errorf("DisplayText(%q) = %q, want %q", it.IDPath, it.DisplayText, want)
		}
	}
}

func TestBuildDisplayListEmpty(t *testing.T) {
	if got := BuildDisplayList(nil); got != nil {
		t.Errorf("BuildDisplayList(nil) = %v, want nil", got)
	}
	if got := BuildDisplayList(&SystemDiskInfo{}); len(got) != 0 {
		t.Errorf("BuildDisplayList(empty) has %d rows, want 0", len(got))
	}
}

func TestClosedLuksIsSelectable(t *testing.T) {
	info := &SystemDiskInfo{Disks: []PhysicalDisk{{
		Path: "/dev/sdc",
		Partitions: []Partition{{
			Path:    "/dev/sdc1",
			Content: LuksContainer{UUID: "closed"},
		}},
	}}}
	items := BuildDisplayList(info)
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	if !items[2].Selectable {
		t.Error("closed LUKS container should be selectable")
	}
	if !strings.HasSuffix(items[2].DisplayText, " - Not active") {
		t.Errorf("DisplayText = %q, want ' - Not active' suffix", items[2].DisplayText)
	}
}

func TestRebuildPreservesSelectedPath(t *testing.T) {
	info := SampleSnapshot()
	first := BuildDisplayList(info)

	idx, ok := StepSelectable(first, 0, 1)
	if !ok {
		t.Fatal("no selectable row found")
	}
	selected := first[idx].IDPath

	again := BuildDisplayList(info)
	got, ok := IndexOfPath(again, selected)
	if !ok {
		t.Fatalf("IndexOfPath(%q) not found after rebuild", selected)
	}
	if got != idx || !again[got].Selectable {
		t.Errorf("IndexOfPath(%q) = %d (selectable %v), want %d selectable", selected, got, again[got].Selectable, idx)
	}
}

func TestStepSelectable(t *testing.T) {
	items := []DisplayListItem{
		{IDPath: "a"},
		{IDPath: "b", Selectable: true},
		{IDPath: "c"},
		{IDPath: "d", Selectable: true},
		{IDPath: "e"},
	}

	tests := []struct {
		name   string
		from   int
		dir    int
		want   int
		wantOK bool
	}{
		{"down skips header", 1, 1, 3, true},
		{"down wraps", 3, 1, 1, true},
		{"up skips header", 3, -1, 1, true},
		{"up wraps", 1, -1, 3, true},
		{"from non-selectable", 0, 1, 1, true},
		{"zero direction", 1, 0, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := StepSelectable(items, tt.from, tt.dir)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("StepSelectable(%d, %d) = (%d, %v), want (%d, %v)", tt.from, tt.dir, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestStepSelectableNoneSelectable(t *testing.T) {
	items := []DisplayListItem{{IDPath: "a"}, {IDPath: "b"}}
	for _, dir := range []int{1, -1} {
		if got, ok := StepSelectable(items, 1, dir); ok || got != 1 {
			t.Errorf("StepSelectable(dir=%d) = (%d, %v), want (1, false)", dir, got, ok)
		}
	}
	if got, ok := StepSelectable(nil, 0, 1); ok || got != 0 {
		t.Errorf("StepSelectable(nil) = (%d, %v), want (0, false)", got, ok)
	}
}

func TestFirstSelectable(t *testing.T) {
	items := BuildDisplayList(SampleSnapshot())
	idx, ok := FirstSelectable(items)
	if !ok || items[idx].IDPath != "/dev/sda1" {
		t.Errorf("FirstSelectable() = (%d, %v), want /dev/sda1", idx, ok)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{512 * mib, "512.00 MB"},
		{250 * gib, "250.00 GB"},
		{1024 * gib, "1.00 TB"},
	}
	for _, tt := range tests {
		if got := FormatSize(tt.in); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStaticProvider(t *testing.T) {
	p := NewSampleProvider()
	info, err := p.Snapshot(context.Background())
	if err != nil || info.IsEmpty() {
		t.Fatalf("Snapshot() = (%v, %v), want sample", info, err)
	}

	empty := &StaticProvider{}
	if _, err := empty.Snapshot(context.Background()); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("Snapshot() error = %v, want ErrNoSnapshot", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Snapshot(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Snapshot(cancelled) error = %v, want context.Canceled", err)
	}
}
