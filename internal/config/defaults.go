package config

// Default returns the repository default configuration. Paths are expanded
// during normalize, not here.
func Default() Config {
	return Config{
		Paths: Paths{
			ProjectDir: "",
			LogDir:     "~/.local/share/slate/logs",
			DataDir:    "~/.local/share/slate",
		},
		Transcripts: Transcripts{
			Dir: "recordings",
		},
		Subtitles: Subtitles{
			Candidates: []string{
				"final/final.srt",
				"export/final.srt",
				"final.srt",
			},
		},
		Logging: Logging{
			Format: "console",
			Level:  "info",
		},
		History: History{
			Enabled: true,
			Keep:    50,
		},
	}
}
