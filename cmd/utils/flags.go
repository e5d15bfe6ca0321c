package utils

const (
	PathFlag       = "path"
	ConfigFlag     = "config"
	PortFlag       = "port"
	StateFlag      = "state"
	ZipFlag        = "zip"
	GenderFlag     = "gender"
	CountFlag      = "count"
	FormatFlag     = "format"
	SeedFlag       = "seed"
	DirFlag        = "dir"
	DbFlag         = "db"
	LimitFlag      = "limit"
	TollFreeFlag   = "toll-free"
	UnweightedFlag = "unweighted"

	DefaultPort = 14242
)
