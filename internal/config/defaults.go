package config

const (
	defaultMetaRoot          = "meta data"
	defaultPaperRoot         = "paper"
	defaultOutput            = "manifest.json"
	defaultExtension         = ".txt"
	defaultDocumentExtension = ".pdf"
	defaultTitleLabel        = "제목"
	defaultCategoryLabel     = "구분"
	defaultAbstractLabel     = "초록"
	defaultOutputFormat      = "json"
	defaultServeBind         = "127.0.0.1:8080"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			MetaRoot:  defaultMetaRoot,
			PaperRoot: defaultPaperRoot,
			Output:    defaultOutput,
		},
		Metadata: Metadata{
			Extension:         defaultExtension,
			DocumentExtension: defaultDocumentExtension,
			TitleLabels:       []string{defaultTitleLabel},
			CategoryLabels:    []string{defaultCategoryLabel},
			AbstractLabels:    []string{defaultAbstractLabel},
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
		Serve: Serve{
			Bind: defaultServeBind,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
