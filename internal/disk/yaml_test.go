package disk

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestPartitionYAMLCarriesContent(t *testing.T) {
	data, err := yaml.Marshal(luksLvmSnapshot())
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}
	out := string(data)

	for _, want := range []string{
		"path: /dev/vda1",
		"fs_type: crypto_LUKS",
		"kind: luks",
		"mapped_name: cryptroot",
		"kind: lvm_pv",
		"path: /dev/mapper/cryptroot",
		"vg_name: vg0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("yaml.Marshal() missing %q:\n%s", want, out)
		}
	}
}

func TestContentKinds(t *testing.T) {
	tests := []struct {
		content Content
		want    string
	}{
		{FileSystem{}, KindFileSystem},
		{LuksContainer{UUID: "u"}, KindLuks},
		{LvmPhysicalVolume{VGName: "vg"}, KindLvmPV},
		{VeraCryptContainer{}, KindVeraCrypt},
		{UnknownSpace{}, KindUnknown},
		{Swap{}, KindSwap},
	}
	for _, tt := range tests {
		got := contentToYAML(tt.content)
		if got == nil || got.Kind != tt.want {
			t.Errorf("contentToYAML(%T) = %+v, want kind %q", tt.content, got, tt.want)
		}
	}
	if got := contentToYAML(nil); got != nil {
		t.Errorf("contentToYAML(nil) = %+v, want nil", got)
	}
}

func TestPartitionWithoutContentOmitsKey(t *testing.T) {
	data, err := yaml.Marshal(Partition{Path: "/dev/sdz1", SizeBytes: 1})
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}
	if strings.Contains(string(data), "content:") {
		t.Errorf("unexpected content key:\n%s", data)
	}
}
