package release

import (
	"errors"
	"testing"

	"github.com/realJogicodes/install-svelte-app-fast-dev/internal/platform"
)

func TestBuildAsset(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		osFamily platform.OSFamily
		arch     platform.Arch
		wantFile string
	}{
		{
			name:     "linux amd64",
			version:  "0.24.1",
			osFamily: platform.OSLinux,
			arch:     platform.ArchAMD64,
			wantFile: "pocketbase_0.24.1_linux_amd64.zip",
		},
		{
			name:     "darwin arm64",
			version:  "0.24.1",
			osFamily: platform.OSDarwin,
			arch:     platform.ArchARM64,
			wantFile: "pocketbase_0.24.1_darwin_arm64.zip",
		},
		{
			name:     "wsl targets linux binary",
			version:  "0.24.1",
			osFamily: platform.OSWSL,
			arch:     platform.ArchAMD64,
			wantFile: "pocketbase_0.24.1_linux_amd64.zip",
		},
		{
			name:     "linux armv7",
			version:  "0.25.0",
			osFamily: platform.OSLinux,
			arch:     platform.ArchARMv7,
			wantFile: "pocketbase_0.25.0_linux_armv7.zip",
		},
		{
			name:     "linux s390x",
			version:  "0.24.1",
			osFamily: platform.OSLinux,
			arch:     platform.ArchS390X,
			wantFile: "pocketbase_0.24.1_linux_s390x.zip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset, err := BuildAsset(tt.version, tt.osFamily, tt.arch)
			if err != nil {
				t.Fatalf("BuildAsset() error = %v", err)
			}
			if asset.FileName != tt.wantFile {
				t.Errorf("BuildAsset() FileName = %q, want %q", asset.FileName, tt.wantFile)
			}
			wantURL := "https://github.com/pocketbase/pocketbase/releases/download/v" +
				tt.version + "/" + tt.wantFile
			if asset.DownloadURL != wantURL {
				t.Errorf("BuildAsset() DownloadURL = %q, want %q", asset.DownloadURL, wantURL)
			}
			if asset.Version != tt.version {
				t.Errorf("BuildAsset() Version = %q, want %q", asset.Version, tt.version)
			}
		})
	}
}

func TestBuildAssetDeterministic(t *testing.T) {
	first, err := BuildAsset("0.24.1", platform.OSLinux, platform.ArchAMD64)
	if err != nil {
		t.Fatalf("BuildAsset() error = %v", err)
	}
	second, err := BuildAsset("0.24.1", platform.OSLinux, platform.ArchAMD64)
	if err != nil {
		t.Fatalf("BuildAsset() error = %v", err)
	}
	if first != second {
		t.Errorf("BuildAsset() not deterministic: %+v != %+v", first, second)
	}
}

func TestBuildAssetRejectsUnsupported(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		osFamily platform.OSFamily
		arch     platform.Arch
	}{
		{"unsupported os", "0.24.1", platform.OSUnsupported, platform.ArchAMD64},
		{"native windows", "0.24.1", platform.OSWindows, platform.ArchAMD64},
		{"unsupported arch", "0.24.1", platform.OSLinux, platform.ArchUnsupported},
		{"empty version", "", platform.OSLinux, platform.ArchAMD64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildAsset(tt.version, tt.osFamily, tt.arch)
			if err == nil {
				t.Fatal("BuildAsset() error = nil, want ErrUnsupportedTarget")
			}
			if !errors.Is(err, ErrUnsupportedTarget) {
				t.Errorf("BuildAsset() error = %v, want ErrUnsupportedTarget", err)
			}
		})
	}
}

func TestChecksumsURL(t *testing.T) {
	got := ChecksumsURL("0.24.1")
	want := "https://github.com/pocketbase/pocketbase/releases/download/v0.24.1/checksums.txt"
	if got != want {
		t.Errorf("ChecksumsURL() = %q, want %q", got, want)
	}
}
