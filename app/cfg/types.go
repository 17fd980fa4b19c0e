package cfg

type Cfg struct {
	// Source feed configuration
	FeedURL        string
	TimezoneOffset int
	ShiftPubDate   bool

	// Output configuration
	OutputDir string
	BaseUrl   string
	ShowsFile string
	DBPath    string

	// Serve mode configuration
	Serve           bool
	Port            string
	RefreshInterval int

	// Application metadata
	UserAgent string
	Debug     bool
	Version   string
}
