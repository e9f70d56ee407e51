package desktop

import "testing"

func TestCapabilitiesFor(t *testing.T) {
	tests := []struct {
		goos string
		want Capabilities
	}{
		{"windows", Capabilities{TrayPrimaryClickShows: true}},
		{"linux", Capabilities{TrayPrimaryClickShows: true}},
		{"darwin", Capabilities{DockReopenShows: true}},
		{"freebsd", Capabilities{}},
		{"", Capabilities{}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			if got := CapabilitiesFor(tt.goos); got != tt.want {
				t.Errorf("CapabilitiesFor(%q) = %+v, want %+v", tt.goos, got, tt.want)
			}
		})
	}
}
