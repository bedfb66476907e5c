package platform

import "strings"

// archMap maps raw machine architecture strings to normalized names.
// Covers both uname -m and GOARCH spellings, since the machine signal
// falls back to GOARCH when the kernel arch cannot be read.
var archMap = map[string]Arch{
	"x86_64":  ArchAMD64,
	"amd64":   ArchAMD64,
	"aarch64": ArchARM64,
	"arm64":   ArchARM64,
	"armv7l":  ArchARMv7,
	"armv7":   ArchARMv7,
	"arm":     ArchARMv7,
	"ppc64le": ArchPPC64LE,
	"s390x":   ArchS390X,
}

// normalizeArch converts a raw machine architecture string to a
// normalized Arch. Unlisted values map to ArchUnsupported.
func normalizeArch(machine string) Arch {
	normalized := strings.ToLower(strings.TrimSpace(machine))
	if arch, ok := archMap[normalized]; ok {
		return arch
	}
	return ArchUnsupported
}
