package disk

const (
	mib uint64 = 1024 * 1024
	gib uint64 = 1024 * mib
)

// SampleSnapshot returns a representative layout used until real block device
// enumeration exists: an encrypted LVM system disk, a data HDD with free
// space and an NVMe drive with swap and a second volume group.
func SampleSnapshot() *SystemDiskInfo {
	sda2Size := 249_000_000_000 - 512*mib

	sda := PhysicalDisk{
		Path:      "/dev/sda",
		Model:     "Samsung SSD 970 EVO",
		Vendor:    "Samsung",
		SizeBytes: 250 * gib,
		Partitions: []Partition{
			{
				Path:         "/dev/sda1",
				PartTypeGUID: "C12A7328-F81F-11D2-BA4B-00A0C93EC93B",
				PartLabel:    "EFI System Partition",
				FsType:       "vfat",
				FsUUID:       "A1B2-C3D4",
				SizeBytes:    512 * mib,
				MountPoint:   "/boot/efi",
				Content:      FileSystem{},
			},
			{
				Path:      "/dev/sda2",
				FsType:    "crypto_LUKS",
				SizeBytes: sda2Size,
				Content: LuksContainer{
					UUID:       "luks-uuid-sda2",
					MappedName: "cr_lvm",
					Mapped: MappedLvmPhysicalVolume{PV: LvmPhysicalVolumeData{
						Path:      "/dev/mapper/cr_lvm",
						PVUUID:    "lvm-pv-uuid-on-cr_lvm",
						VGName:    "vg_system",
						SizeBytes: sda2Size,
						FreeBytes: 10_000_000_000,
					}},
				},
			},
		},
	}

	sdb := PhysicalDisk{
		Path:       "/dev/sdb",
		Model:      "WD Blue HDD",
		Vendor:     "Western Digital",
		SizeBytes:  1000 * gib,
		Rotational: true,
		Partitions: []Partition{
			{
				Path:      "/dev/sdb1",
				FsType:    "ntfs",
				FsLabel:   "WindowsData",
				SizeBytes: 500 * gib,
				Content:   FileSystem{},
			},
			{
				Path:      "/dev/sdb2",
				SizeBytes: 500 * gib,
				Content:   UnknownSpace{},
			},
		},
	}

	nvme := PhysicalDisk{
		Path:      "/dev/nvme0n1",
		Model:     "Kingston NVMe",
		Vendor:    "Kingston",
		SizeBytes: 500 * gib,
		Partitions: []Partition{
			{
				Path:      "/dev/nvme0n1p1",
				FsType:    "linux-swap",
				SizeBytes: 16 * gib,
				Content:   Swap{},
			},
			{
				Path:      "/dev/nvme0n1p2",
				FsType:    "LVM2_member",
				SizeBytes: 480 * gib,
				Content:   LvmPhysicalVolume{PVUUID: "lvm-pv-uuid-on-nvme", VGName: "vg_data"},
			},
		},
	}

	return &SystemDiskInfo{
		Disks: []PhysicalDisk{sda, sdb, nvme},
		LvmVolumeGroups: []LvmVolumeGroup{
			{
				Name:            "vg_system",
				UUID:            "vg-uuid-system",
				SizeBytes:       240_000_000_000,
				FreeBytes:       10_000_000_000,
				PhysicalVolumes: []string{"/dev/mapper/cr_lvm"},
				LogicalVolumes: []LvmLogicalVolume{
					{
						Name:       "lv_root",
						Path:       "/dev/vg_system/lv_root",
						UUID:       "lv-uuid-root",
						SizeBytes:  100 * gib,
						FsType:     "ext4",
						MountPoint: "/",
					},
					{
						Name:       "lv_home",
						Path:       "/dev/vg_system/lv_home",
						UUID:       "lv-uuid-home",
						SizeBytes:  130 * gib,
						FsType:     "ext4",
						MountPoint: "/home",
					},
				},
			},
			{
				Name:            "vg_data",
				UUID:            "vg-uuid-data",
				SizeBytes:       480 * gib,
				PhysicalVolumes: []string{"/dev/nvme0n1p2"},
				LogicalVolumes: []LvmLogicalVolume{
					{
						Name:       "lv_games",
						Path:       "/dev/vg_data/lv_games",
						UUID:       "lv-uuid-games",
						SizeBytes:  480 * gib,
						FsType:     "btrfs",
						MountPoint: "/mnt/games",
					},
				},
			},
		},
	}
}
