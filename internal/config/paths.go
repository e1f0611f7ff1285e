package config

const (
	ConfigFile = "cix.yaml"
	ConfigDir  = ".cix"
)

const (
	DefaultName     = "cix"
	DefaultDivider  = "/"
	DefaultPrompt   = "cix> "
	DefaultMaxDepth = 32
)

const (
	EnvDivider  = "CIX_DIVIDER"
	EnvLogLevel = "CIX_LOG_LEVEL"
	EnvPrompt   = "CIX_PROMPT"
)
