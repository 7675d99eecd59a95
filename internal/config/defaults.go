package config

const (
	// DefaultEnvFile is the dotenv file read from the working directory
	DefaultEnvFile = ".env"
	// DefaultEncoding is the default output encoding
	DefaultEncoding = EncodingUTF8
	// DefaultMerge controls whether rows sharing a title prefix are merged
	DefaultMerge = false
)

// Output encodings accepted by the ZenTao import dialog
const (
	EncodingUTF8 = "utf-8"
	EncodingGBK  = "gbk"
)

// Environment keys read by Load
const (
	EnvMerge     = "XMIND2ZENTAO_MERGE"
	EnvEncoding  = "XMIND2ZENTAO_ENCODING"
	EnvOutputDir = "XMIND2ZENTAO_OUTPUT_DIR"
)

// DefaultPathsToIgnore are the default directories to ignore when scanning for case lists
var DefaultPathsToIgnore = []string{
	"node_modules",
	"vendor",
	"dist",
	"build",
}

// DefaultSourceExtensions are the file extensions treated as test case lists
var DefaultSourceExtensions = []string{
	".json",
	".yaml",
	".yml",
}
