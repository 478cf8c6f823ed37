package disk

// SystemDiskInfo is an immutable snapshot of block devices and LVM layout.
// Optional string fields are empty when the value is unknown.
type SystemDiskInfo struct {
	Disks           []PhysicalDisk   `json:"disks" yaml:"disks"`
	LvmVolumeGroups []LvmVolumeGroup `json:"lvm_volume_groups" yaml:"lvm_volume_groups"`
}

// PhysicalDisk is a whole block device such as /dev/sda.
type PhysicalDisk struct {
	Path       string      `json:"path" yaml:"path"`
	Model      string      `json:"model,omitempty" yaml:"model,omitempty"`
	Vendor     string      `json:"vendor,omitempty" yaml:"vendor,omitempty"`
	SizeBytes  uint64      `json:"size_bytes" yaml:"size_bytes"`
	Rotational bool        `json:"rota" yaml:"rota"`
	Partitions []Partition `json:"partitions" yaml:"partitions"`
}

// Partition is a partition table entry on a PhysicalDisk.
type Partition struct {
	Path         string `json:"path" yaml:"path"`
	PartTypeGUID string `json:"part_type_guid,omitempty" yaml:"part_type_guid,omitempty"`
	PartLabel    string `json:"part_label,omitempty" yaml:"part_label,omitempty"`
	PartUUID     string `json:"part_uuid,omitempty" yaml:"part_uuid,omitempty"`
	PartFlags    string `json:"part_flags,omitempty" yaml:"part_flags,omitempty"`
	FsType       string `json:"fs_type,omitempty" yaml:"fs_type,omitempty"`
	FsUUID       string `json:"fs_uuid,omitempty" yaml:"fs_uuid,omitempty"`
	FsLabel      string `json:"fs_label,omitempty" yaml:"fs_label,omitempty"`
	SizeBytes    uint64 `json:"size_bytes" yaml:"size_bytes"`
	MountPoint   string `json:"mount_point,omitempty" yaml:"mount_point,omitempty"`

	// Content describes what lives inside the partition. Nil when unknown.
	// MarshalYAML writes it as a map tagged with "kind".
	Content Content `json:"-" yaml:"-"`
}

// Content is the sum type of partition contents. The concrete types are
// FileSystem, LuksContainer, LvmPhysicalVolume, VeraCryptContainer,
// UnknownSpace and Swap.
type Content interface {
	isContent()
}

// FileSystem marks a partition formatted directly with a filesystem. The
// filesystem details live on the Partition itself.
type FileSystem struct{}

// LuksContainer is a LUKS encrypted partition. MappedName is empty while the
// container is closed.
type LuksContainer struct {
	UUID       string
	MappedName string
	Mapped     MappedContent
}

// LvmPhysicalVolume is an LVM physical volume placed directly on a partition.
type LvmPhysicalVolume struct {
	PVUUID string
	VGName string
}

// VeraCryptContainer is reserved for VeraCrypt volumes.
type VeraCryptContainer struct {
	Mounted   bool
	MountPath string
}

// UnknownSpace is unformatted or unrecognized space.
type UnknownSpace struct{}

// Swap is a swap partition.
type Swap struct{}

func (FileSystem) isContent()         {}
func (LuksContainer) isContent()      {}
func (LvmPhysicalVolume) isContent()  {}
func (VeraCryptContainer) isContent() {}
func (UnknownSpace) isContent()       {}
func (Swap) isContent()               {}

// MappedContent is the sum type of what an opened LUKS container exposes:
// MappedLvmPhysicalVolume, MappedFileSystem or MappedUnknown.
type MappedContent interface {
	isMapped()
}

// MappedLvmPhysicalVolume is an LVM PV inside an opened LUKS container.
type MappedLvmPhysicalVolume struct {
	PV LvmPhysicalVolumeData
}

// MappedFileSystem is a filesystem inside an opened LUKS container.
type MappedFileSystem struct {
	FsType     string
	FsUUID     string
	FsLabel    string
	MountPoint string
}

// MappedUnknown is unrecognized data inside an opened LUKS container.
type MappedUnknown struct{}

func (MappedLvmPhysicalVolume) isMapped() {}
func (MappedFileSystem) isMapped()        {}
func (MappedUnknown) isMapped()           {}

// LvmPhysicalVolumeData describes a PV regardless of where it is placed.
type LvmPhysicalVolumeData struct {
	Path      string `json:"path" yaml:"path"`
	PVUUID    string `json:"pv_uuid" yaml:"pv_uuid"`
	VGName    string `json:"vg_name,omitempty" yaml:"vg_name,omitempty"`
	SizeBytes uint64 `json:"size_bytes" yaml:"size_bytes"`
	FreeBytes uint64 `json:"free_bytes" yaml:"free_bytes"`
}

// LvmVolumeGroup is an LVM volume group with its logical volumes.
type LvmVolumeGroup struct {
	Name            string             `json:"name" yaml:"name"`
	UUID            string             `json:"uuid" yaml:"uuid"`
	SizeBytes       uint64             `json:"size_bytes" yaml:"size_bytes"`
	FreeBytes       uint64             `json:"free_bytes" yaml:"free_bytes"`
	PhysicalVolumes []string           `json:"physical_volumes" yaml:"physical_volumes"`
	LogicalVolumes  []LvmLogicalVolume `json:"logical_volumes" yaml:"logical_volumes"`
}

// LvmLogicalVolume is a logical volume inside a volume group.
type LvmLogicalVolume struct {
	Name       string `json:"name" yaml:"name"`
	Path       string `json:"path" yaml:"path"`
	UUID       string `json:"uuid" yaml:"uuid"`
	SizeBytes  uint64 `json:"size_bytes" yaml:"size_bytes"`
	FsType     string `json:"fs_type,omitempty" yaml:"fs_type,omitempty"`
	FsUUID     string `json:"fs_uuid,omitempty" yaml:"fs_uuid,omitempty"`
	FsLabel    string `json:"fs_label,omitempty" yaml:"fs_label,omitempty"`
	MountPoint string `json:"mount_point,omitempty" yaml:"mount_point,omitempty"`
}

// IsEmpty reports whether the snapshot has neither disks nor volume groups.
func (s *SystemDiskInfo) IsEmpty() bool {
	return s == nil || (len(s.Disks) == 0 && len(s.LvmVolumeGroups) == 0)
}
