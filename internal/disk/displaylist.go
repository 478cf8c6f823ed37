package disk

import (
	"fmt"
	"strings"
)

// ItemType classifies a display list row.
type ItemType int

const (
	ItemDisk ItemType = iota
	ItemPartition
	ItemLuksContainer
	ItemLvmPhysicalVolume
	ItemFileSystem
	ItemUnallocated
	ItemLabel
	ItemLvmVolumeGroup
	ItemLvmLogicalVolume
)

func (t ItemType) String() string {
	switch t {
	case ItemDisk:
		return "disk"
	case ItemPartition:
		return "partition"
	case ItemLuksContainer:
		return "luks"
	case ItemLvmPhysicalVolume:
		return "lvm_pv"
	case ItemFileSystem:
		return "filesystem"
	case ItemUnallocated:
		return "unallocated"
	case ItemLabel:
		return "label"
	case ItemLvmVolumeGroup:
		return "lvm_vg"
	case ItemLvmLogicalVolume:
		return "lvm_lv"
	default:
		return fmt.Sprintf("ItemType(%d)", int(t))
	}
}

// DisplayListItem is one render-ready row of the flattened disk topology.
// IDPath is unique within a list and stable across rebuilds of the same
// snapshot.
type DisplayListItem struct {
	IDPath      string
	DisplayText string
	IndentLevel int
	Type        ItemType
	Selectable  bool
	SizeBytes   *uint64
}

// LvmSectionID is the IDPath of the label row preceding volume groups.
const LvmSectionID = "lvm_section_header"

const (
	indent     = "  "
	prefixLuks = "🔒"
	prefixLvm  = "📦"
	prefixDisk = "💾"
	prefixPart = "📄"
	prefixFs   = "🗛"
)

// BuildDisplayList flattens info depth-first: each disk, its partitions and
// at most one content branch per partition, followed by a volume group
// section when any groups exist.
func BuildDisplayList(info *SystemDiskInfo) []DisplayListItem {
	if info == nil {
		return nil
	}

	var items []DisplayListItem
	for _, d := range info.Disks {
		items = append(items, DisplayListItem{
			IDPath:      d.Path,
			DisplayText: fmt.Sprintf("%s %s (%s, %s)", prefixDisk, d.Path, orDefault(d.Model, "N/A"), FormatSize(d.SizeBytes)),
			IndentLevel: 0,
			Type:        ItemDisk,
			SizeBytes:   sizePtr(d.SizeBytes),
		})

		for _, p := range d.Partitions {
			items = append(items, DisplayListItem{
				IDPath:      p.Path,
				DisplayText: fmt.Sprintf("%s└─ %s %s (%s, %s)", indent, prefixPart, p.Path, FormatSize(p.SizeBytes), partitionTags(p)),
				IndentLevel: 1,
				Type:        ItemPartition,
				Selectable:  true,
				SizeBytes:   sizePtr(p.SizeBytes),
			})
			items = appendContent(items, p)
		}
	}

	if len(info.LvmVolumeGroups) == 0 {
		return items
	}

	items = append(items, DisplayListItem{
		IDPath:      LvmSectionID,
		DisplayText: prefixLvm + " LVM Volume Groups:",
		Type:        ItemLabel,
	})
	for _, vg := range info.LvmVolumeGroups {
		items = append(items, DisplayListItem{
			IDPath: "lvm_vg/" + vg.Name,
			DisplayText: fmt.Sprintf("%s (%s, %s free, PVs: %s)",
				vg.Name, FormatSize(vg.SizeBytes), FormatSize(vg.FreeBytes), strings.Join(vg.PhysicalVolumes, ", ")),
			IndentLevel: 1,
			Type:        ItemLvmVolumeGroup,
			SizeBytes:   sizePtr(vg.SizeBytes),
		})

		for _, lv := range vg.LogicalVolumes {
			details := []string{FormatSize(lv.SizeBytes)}
			if lv.FsType != "" {
				details = append(details, lv.FsType)
			}
			if lv.FsLabel != "" {
				details = append(details, fmt.Sprintf("'%s'", lv.FsLabel))
			}
			if lv.MountPoint != "" {
				details = append(details, fmt.Sprintf("at '%s'", lv.MountPoint))
			}
			suffix := ""
			if lv.MountPoint == "/" {
				suffix = " (Current System Root)"
			}
			items = append(items, DisplayListItem{
				IDPath:      lv.Path,
				DisplayText: fmt.Sprintf("%s└─ %s %s (%s)%s", indent, prefixFs, lv.Name, strings.Join(details, ", "), suffix),
				IndentLevel: 2,
				Type:        ItemLvmLogicalVolume,
				Selectable:  true,
				SizeBytes:   sizePtr(lv.SizeBytes),
			})
		}
	}
	return items
}

func appendContent(items []DisplayListItem, p Partition) []DisplayListItem {
	switch c := p.Content.(type) {
	case LuksContainer:
		luksID := fmt.Sprintf("%s/luks/%s", p.Path, c.UUID)
		state := " - Not active"
		if c.MappedName != "" {
			state = "  " + c.MappedName
		}
		items = append(items, DisplayListItem{
			IDPath:      luksID,
			DisplayText: fmt.Sprintf("%s  └─ %s LUKS Container (%s)%s", indent, prefixLuks, c.UUID, state),
			IndentLevel: 2,
			Type:        ItemLuksContainer,
			Selectable:  c.MappedName == "",
			SizeBytes:   sizePtr(p.SizeBytes),
		})
		if c.MappedName == "" {
			return items
		}

		switch m := c.Mapped.(type) {
		case MappedLvmPhysicalVolume:
			items = append(items, DisplayListItem{
				IDPath:      fmt.Sprintf("%s/lvm_pv/%s", luksID, m.PV.PVUUID),
				DisplayText: fmt.Sprintf("%s    └─ %s LVM PV on %s (for VG: %s)", indent, prefixLvm, c.MappedName, orDefault(m.PV.VGName, "Unknown")),
				IndentLevel: 3,
				Type:        ItemLvmPhysicalVolume,
				SizeBytes:   sizePtr(m.PV.SizeBytes),
			})
		case MappedFileSystem:
			details := []string{orDefault(m.FsType, "FS")}
			if m.FsLabel != "" {
				details = append(details, fmt.Sprintf("'%s'", m.FsLabel))
			}
			if m.MountPoint != "" {
				details = append(details, fmt.Sprintf("at '%s'", m.MountPoint))
			}
			items = append(items, DisplayListItem{
				IDPath:      luksID + "/fs",
				DisplayText: fmt.Sprintf("%s    └─ %s %s on %s (%s)", indent, prefixFs, orDefault(m.FsType, "Filesystem"), c.MappedName, strings.Join(details, ", ")),
				IndentLevel: 3,
				Type:        ItemFileSystem,
				Selectable:  true,
				SizeBytes:   sizePtr(p.SizeBytes),
			})
		}

	case LvmPhysicalVolume:
		items = append(items, DisplayListItem{
			IDPath:      fmt.Sprintf("%s/direct_lvm_pv/%s", p.Path, c.PVUUID),
			DisplayText: fmt.Sprintf("%s  └─ %s LVM PV (for VG: %s)", indent, prefixLvm, orDefault(c.VGName, "Unknown")),
			IndentLevel: 2,
			Type:        ItemLvmPhysicalVolume,
			SizeBytes:   sizePtr(p.SizeBytes),
		})

	case UnknownSpace:
		items = append(items, DisplayListItem{
			IDPath:      p.Path + "/unallocated",
			DisplayText: indent + "  └─ Unallocated or Unknown Space",
			IndentLevel: 2,
			Type:        ItemUnallocated,
			Selectable:  true,
			SizeBytes:   sizePtr(p.SizeBytes),
		})

	case FileSystem, Swap, VeraCryptContainer, nil:
		// The partition row already carries the filesystem details.
	}
	return items
}

func partitionTags(p Partition) string {
	var tags []string
	if p.FsType != "" {
		tags = append(tags, p.FsType)
	}
	if label := orDefault(p.FsLabel, p.PartLabel); label != "" {
		tags = append(tags, fmt.Sprintf("'%s'", label))
	}
	if p.MountPoint != "" {
		tags = append(tags, fmt.Sprintf("at '%s'", p.MountPoint))
	}
	return strings.Join(tags, ", ")
}

// FirstSelectable returns the index of the first selectable row.
func FirstSelectable(items []DisplayListItem) (int, bool) {
	for i, it := range items {
		if it.Selectable {
			return i, true
		}
	}
	return 0, false
}

// IndexOfPath returns the index of the row with the given IDPath.
func IndexOfPath(items []DisplayListItem, idPath string) (int, bool) {
	for i, it := range items {
		if it.IDPath == idPath {
			return i, true
		}
	}
	return 0, false
}

// StepSelectable moves from index from in direction dir (+1 or -1), wrapping
// at both ends and skipping rows that are not selectable. The walk stops
// after one full revolution; ok is false when no selectable row was met and
// from is returned unchanged.
func StepSelectable(items []DisplayListItem, from, dir int) (int, bool) {
	n := len(items)
	if n == 0 || dir == 0 {
		return from, false
	}
	if dir > 0 {
		dir = 1
	} else {
		dir = -1
	}

	i := from
	if i < 0 || i >= n {
		i = 0
	}
	start := i
	for {
		i = (i + dir + n) % n
		if items[i].Selectable {
			return i, true
		}
		if i == start {
			return from, false
		}
	}
}

// FormatSize renders a byte count with binary units, e.g. "1.50 GB".
func FormatSize(bytes uint64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
		tb = gb * 1024
	)
	switch {
	case bytes >= tb:
		return fmt.Sprintf("%.2f TB", float64(bytes)/tb)
	case bytes >= gb:
		return fmt.Sprintf("%.2f GB", float64(bytes)/gb)
	case bytes >= mb:
		return fmt.Sprintf("%.2f MB", float64(bytes)/mb)
	case bytes >= kb:
		return fmt.Sprintf("%.2f KB", float64(bytes)/kb)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func sizePtr(v uint64) *uint64 {
	return &v
}
