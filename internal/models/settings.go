package models

// Settings is the resolved engine policy.
//
// Values are built whole by the settings package and handed to the engine
// by value. The struct is comparable, so == is field-by-field equality.
type Settings struct {
	BackupOldPngFiles               bool
	KeepInterlacing                 bool
	AvoidGreyWithSimpleTransparency bool
	IgnoreAnimatedGifs              bool
	KeepFileDate                    bool
	KeepPixels                      bool

	BkgdOption ChunkOption
	BkgdColor  RGB // Only used with ChunkForce

	TextOption  ChunkOption
	TextKeyword string // Only used with ChunkForce
	TextData    string // Only used with ChunkForce

	PhysOption ChunkOption
	PhysPpmX   uint32 // Pixels per meter, only used with ChunkForce
	PhysPpmY   uint32

	// fcTL (APNG frame control).
	FctlOption   ChunkOption
	FctlDelayNum uint32
	FctlDelayDen uint32 // Zero means 100
}
