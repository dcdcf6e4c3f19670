package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultDocumentURL is the document that is spell-checked.
	DefaultDocumentURL = "https://outside-interview.herokuapp.com/document"

	// DefaultSpellCheckBaseURL is the spell-check endpoint. Each candidate
	// word is appended to it verbatim.
	DefaultSpellCheckBaseURL = "https://outside-interview.herokuapp.com/spelling/"

	// DefaultWorkers is the number of concurrent spell-check probes.
	DefaultWorkers = 5

	// DefaultTimeout bounds each individual HTTP request.
	DefaultTimeout = 60 * time.Second

	// DefaultSuffix is appended to the digest to form the answer line.
	DefaultSuffix = "@outsideinc.com"

	// DefaultHashAlgorithm is the digest algorithm.
	DefaultHashAlgorithm = "md5"

	// AppName is the application name used for XDG directory paths.
	AppName = "spelldigest"

	// DefaultUserAgent identifies spelldigest in HTTP requests.
	DefaultUserAgent = "spelldigest/1.0 (+https://github.com/nao1215/spelldigest)"

	// DefaultMaxBodySize limits how much of the document is read.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB
)

// Config holds all configuration options for a spelldigest run.
// It is populated from defaults, the configuration file and CLI flags, in
// that order, and passed explicitly to every component.
type Config struct {
	// DocumentURL is the address of the document to spell-check.
	DocumentURL string

	// SpellCheckBaseURL is the prefix candidate words are appended to.
	SpellCheckBaseURL string

	// Workers is the width of the probe worker pool.
	Workers int

	// Timeout bounds each HTTP request, including the document fetch.
	Timeout time.Duration

	// Suffix is appended to the digest to form the answer.
	Suffix string

	// SortBeforeDigest sorts the misspelled words before digesting them.
	// When false the digest follows probe completion order, which is not
	// stable across runs against a real network.
	SortBeforeDigest bool

	// Strict makes the run fail when any probe was absorbed as a failure.
	// The answer is still written before the error is returned.
	Strict bool

	// HashAlgorithm selects the digest algorithm ("md5" or "blake2b").
	HashAlgorithm string

	// ProxyAddress is an optional SOCKS5 proxy in "host:port" format.
	ProxyAddress string

	// Headers are extra HTTP headers sent with every request.
	Headers map[string]string

	// UserAgent is the User-Agent header sent with every request.
	UserAgent string

	// MaxBodySize is the maximum number of document bytes read.
	MaxBodySize int64

	// Verbose enables debug logging.
	Verbose bool

	// JSONLog switches log output to JSON.
	JSONLog bool

	// JSONReport selects JSON report output.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown report output.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile writes the report to a file instead of stdout.
	ReportFile string

	// SaveToDB stores the final run result in the history database.
	SaveToDB bool

	// DBDir is the directory holding the history database.
	DBDir string

	// ConfigFilePath is the path to the configuration file.
	// If empty, .spelldigest is searched in the current and home directory.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		DocumentURL:       DefaultDocumentURL,
		SpellCheckBaseURL: DefaultSpellCheckBaseURL,
		Workers:           DefaultWorkers,
		Timeout:           DefaultTimeout,
		Suffix:            DefaultSuffix,
		HashAlgorithm:     DefaultHashAlgorithm,
		UserAgent:         DefaultUserAgent,
		MaxBodySize:       DefaultMaxBodySize,
		Headers:           make(map[string]string),
		DBDir:             XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for spelldigest.
// On Linux: ~/.local/share/spelldigest
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for spelldigest.
// On Linux: ~/.config/spelldigest
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid and returns the first
// problem found.
func (c *Config) Validate() error {
	if c.DocumentURL == "" {
		return ErrNoDocumentURL
	}
	if !isHTTPURL(c.DocumentURL) {
		return ErrInvalidDocumentURL
	}
	if c.SpellCheckBaseURL == "" {
		return ErrNoSpellCheckURL
	}
	if !isHTTPURL(c.SpellCheckBaseURL) {
		return ErrInvalidSpellCheckURL
	}
	if c.Workers <= 0 {
		return ErrInvalidWorkers
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}
	if !IsSupportedHash(c.HashAlgorithm) {
		return ErrUnsupportedHash
	}
	if c.SaveToDB && c.DBDir == "" {
		return ErrNoDBDir
	}
	return nil
}

// IsSupportedHash reports whether name is a known digest algorithm.
func IsSupportedHash(name string) bool {
	switch name {
	case "md5", "blake2b":
		return true
	default:
		return false
	}
}
