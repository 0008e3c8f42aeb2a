package baker

import "strings"

// CoreSize selects the blueprint core the model is baked for. Each size
// maps to an octree height; the height in turn fixes the root edge length.
type CoreSize string

// CoreType distinguishes the kinds of construct core the save format knows.
type CoreType string

const (
	CoreSizeSmall      CoreSize = "SMALL"
	CoreSizeMedium     CoreSize = "MEDIUM"
	CoreSizeLarge      CoreSize = "LARGE"
	CoreSizeExtraLarge CoreSize = "XL"
)

const (
	CoreTypeStatic  CoreType = "STATIC"
	CoreTypeDynamic CoreType = "DYNAMIC"
)

// Height returns the octree height for the core size. Returns 0 for an
// unknown size.
func (s CoreSize) Height() int {
	switch s {
	case CoreSizeSmall:
		return 5
	case CoreSizeMedium:
		return 6
	case CoreSizeLarge:
		return 7
	case CoreSizeExtraLarge:
		return 8
	}
	return 0
}

func (s CoreSize) String() string {
	return string(s)
}

func ParseCoreSize(value string) CoreSize {
	normalizedValue := strings.Trim(strings.ToUpper(value), " ")
	switch CoreSize(normalizedValue) {
	case CoreSizeSmall, CoreSizeMedium, CoreSizeLarge, CoreSizeExtraLarge:
		return CoreSize(normalizedValue)
	}
	return ""
}

func (t CoreType) String() string {
	return string(t)
}

func ParseCoreType(value string) CoreType {
	normalizedValue := strings.Trim(strings.ToUpper(value), " ")
	switch CoreType(normalizedValue) {
	case CoreTypeStatic, CoreTypeDynamic:
		return CoreType(normalizedValue)
	}
	return ""
}

// Contains the options needed for one bake run.
type BakerOptions struct {
	Input      string   // Input voxel sample document
	Output     string   // Output blueprint file
	Name       string   // Model name embedded in the blueprint
	Size       CoreSize // Core size, fixes the octree height
	Type       CoreType // Core type
	MaterialID uint64   // Fallback material id for flat position lists

	Command string
}

func (opt *BakerOptions) Copy() *BakerOptions {
	newOpt := *opt
	return &newOpt
}
