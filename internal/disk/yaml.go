package disk

// Content kinds written to YAML.
const (
	KindFileSystem = "filesystem"
	KindLuks       = "luks"
	KindLvmPV      = "lvm_pv"
	KindVeraCrypt  = "veracrypt"
	KindUnknown    = "unknown"
	KindSwap       = "swap"
)

// plainPartition has the fields of Partition without its marshaler.
type plainPartition Partition

type partitionYAML struct {
	plainPartition `yaml:",inline"`
	Content        *contentYAML `yaml:"content,omitempty"`
}

type contentYAML struct {
	Kind       string      `yaml:"kind"`
	UUID       string      `yaml:"uuid,omitempty"`
	MappedName string      `yaml:"mapped_name,omitempty"`
	Mapped     *mappedYAML `yaml:"mapped,omitempty"`
	PVUUID     string      `yaml:"pv_uuid,omitempty"`
	VGName     string      `yaml:"vg_name,omitempty"`
	Mounted    bool        `yaml:"mounted,omitempty"`
	MountPath  string      `yaml:"mount_path,omitempty"`
}

type mappedYAML struct {
	Kind       string                 `yaml:"kind"`
	PV         *LvmPhysicalVolumeData `yaml:"pv,omitempty"`
	FsType     string                 `yaml:"fs_type,omitempty"`
	FsUUID     string                 `yaml:"fs_uuid,omitempty"`
	FsLabel    string                 `yaml:"fs_label,omitempty"`
	MountPoint string                 `yaml:"mount_point,omitempty"`
}

// MarshalYAML writes the partition with its content as a "kind" tagged map.
func (p Partition) MarshalYAML() (interface{}, error) {
	return partitionYAML{
		plainPartition: plainPartition(p),
		Content:        contentToYAML(p.Content),
	}, nil
}

func contentToYAML(c Content) *contentYAML {
	switch c := c.(type) {
	case FileSystem:
		return &contentYAML{Kind: KindFileSystem}
	case LuksContainer:
		return &contentYAML{
			Kind:       KindLuks,
			UUID:       c.UUID,
			MappedName: c.MappedName,
			Mapped:     mappedToYAML(c.Mapped),
		}
	case LvmPhysicalVolume:
		return &contentYAML{Kind: KindLvmPV, PVUUID: c.PVUUID, VGName: c.VGName}
	case VeraCryptContainer:
		return &contentYAML{Kind: KindVeraCrypt, Mounted: c.Mounted, MountPath: c.MountPath}
	case UnknownSpace:
		return &contentYAML{Kind: KindUnknown}
	case Swap:
		return &contentYAML{Kind: KindSwap}
	default:
		return nil
	}
}

func mappedToYAML(m MappedContent) *mappedYAML {
	switch m := m.(type) {
	case MappedLvmPhysicalVolume:
		pv := m.PV
		return &mappedYAML{Kind: KindLvmPV, PV: &pv}
	case MappedFileSystem:
		return &mappedYAML{
			Kind:       KindFileSystem,
			FsType:     m.FsType,
			FsUUID:     m.FsUUID,
			FsLabel:    m.FsLabel,
			MountPoint: m.MountPoint,
		}
	case MappedUnknown:
		return &mappedYAML{Kind: KindUnknown}
	default:
		return nil
	}
}
