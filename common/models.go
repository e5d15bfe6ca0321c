package common

type Conf struct {
	Server        *Server        `yaml:"server,omitempty"`
	Logging       *Logging       `yaml:"logging,omitempty"`
	ReferenceData *ReferenceData `yaml:"referenceData,omitempty"`
	Generator     *Generator     `yaml:"generator,omitempty"`
}

type Server struct {
	Host string `yaml:"host,omitempty"`
	Port int    `yaml:"port,omitempty"`
}

type Logging struct {
	Level string `yaml:"level,omitempty"`
}

type ReferenceData struct {
	// DbPath points at the bbolt file written by `mockdata load`. Empty means the OS data dir.
	DbPath    string `yaml:"dbPath,omitempty"`
	TimeoutMs int64  `yaml:"timeoutMs,omitempty"`
	LoadLimit int    `yaml:"loadLimit,omitempty"`
}

type Generator struct {
	Seed                    uint64 `yaml:"seed,omitempty"`
	FirstNameMaxRank        int    `yaml:"firstNameMaxRank,omitempty"`
	LastNameMaxRank         int    `yaml:"lastNameMaxRank,omitempty"`
	SecondaryLineLikelihood int    `yaml:"secondaryLineLikelihood,omitempty"`
	SelfEmployedLikelihood  int    `yaml:"selfEmployedLikelihood,omitempty"`
}
