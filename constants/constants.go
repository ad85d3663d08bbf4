package constants

const (
	Name = "cobinhood"

	// DefaultLogFile is where request logs are appended unless the client is told otherwise.
	DefaultLogFile = "cobinhood.log"

	// EnvPrefix namespaces every environment variable read by the command line tool (e.g.
	// COBINHOOD_API_KEY).
	EnvPrefix = "COBINHOOD"

	LogPrefixFmt = "%-17s "
)
