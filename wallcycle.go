package wallcycle

import _ "embed"

//go:embed version.txt
var Version string

//go:embed default_config.toml
var DefaultConfig string
