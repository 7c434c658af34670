package config

const (
	defaultConfigPath  = "~/.config/rankboard/config.toml"
	projectConfigName  = "rankboard.toml"
	defaultProbeX      = 37
	defaultProbeYStart = 97
	defaultProbeYEnd   = 655
	defaultMinRowH     = 40
	defaultBackend     = "ffmpeg"
	defaultFFmpeg      = "ffmpeg"
	defaultStartOffset = "9s"
	defaultLanguage    = "eng"
	defaultScale       = 1.0
	defaultWorkers     = 1
	defaultOverlayX1   = 31
	defaultOverlayX2   = 1219
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Video backends.
const (
	BackendFFmpeg    = "ffmpeg"
	BackendDirectory = "directory"
	BackendGoCV      = "gocv"
)

// Default returns a Config populated with the layout of the stock 1280x720
// ranking screen.
func Default() Config {
	return Config{
		Probe: Probe{
			X:            defaultProbeX,
			YStart:       defaultProbeYStart,
			YEnd:         defaultProbeYEnd,
			MinRowHeight: defaultMinRowH,
		},
		Columns: Columns{
			Ranking:    Column{Start: 37, End: 161},
			Nickname:   Column{Start: 288, End: 548},
			Points:     Column{Start: 554, End: 732},
			WinsLosses: Column{Start: 738, End: 934},
			WinPercent: Column{Start: 935, End: 1020},
			Rating:     Column{Start: 1024, End: 1218},
		},
		Video: Video{
			Backend:      defaultBackend,
			FFmpegBinary: defaultFFmpeg,
			StartOffset:  defaultStartOffset,
		},
		OCR: OCR{
			Language: defaultLanguage,
			Scale:    defaultScale,
		},
		Extract: Extract{
			Workers: defaultWorkers,
		},
		Debug: Debug{
			OverlayX1: defaultOverlayX1,
			OverlayX2: defaultOverlayX2,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
