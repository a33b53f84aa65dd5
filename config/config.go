// Package config loads pipeline configuration from YAML with environment
// overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Service struct {
	URL string `mapstructure:"url"`
}

type Services struct {
	ASR         Service `mapstructure:"asr"`
	Diarization Service `mapstructure:"diarization"`
}

type Audio struct {
	SampleRate int `mapstructure:"sample_rate"`
	Channels   int `mapstructure:"channels"`
}

// Merge mirrors merge.Options; zero num_speakers keeps all speakers.
type Merge struct {
	NumSpeakers      int     `mapstructure:"num_speakers"`
	GapThreshold     float64 `mapstructure:"gap_threshold"`
	SpeakerTolerance float64 `mapstructure:"speaker_tolerance"`
}

type Output struct {
	Dir              string   `mapstructure:"dir"`
	Formats          []string `mapstructure:"formats"`
	RTTMFromSegments bool     `mapstructure:"rttm_from_segments"`
	SpeakerNames     string   `mapstructure:"speaker_names"`
}

type Root struct {
	Pipeline struct {
		Name     string `mapstructure:"name"`
		LogLevel string `mapstructure:"log_level"`
	} `mapstructure:"pipeline"`
	Audio    Audio    `mapstructure:"audio"`
	Services Services `mapstructure:"services"`
	Merge    Merge    `mapstructure:"merge"`
	Output   Output   `mapstructure:"output"`
}

// Load reads configuration from path, or from config.yaml in the working
// directory and ./config when path is empty. Every key has a default, so a
// missing file is only an error when a path was given explicitly.
// Environment variables prefixed DIARISE_ override file values
// (DIARISE_SERVICES_ASR_URL and so on).
func Load(path string) (*Root, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("DIARISE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("config")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Root
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("pipeline.name", "diarise-pipeline")
	v.SetDefault("pipeline.log_level", "info")
	v.SetDefault("audio.sample_rate", 16000)
	v.SetDefault("audio.channels", 1)
	v.SetDefault("services.asr.url", "http://localhost:9000")
	v.SetDefault("services.diarization.url", "http://localhost:9001")
	v.SetDefault("merge.num_speakers", 0)
	v.SetDefault("merge.gap_threshold", 0.8)
	v.SetDefault("merge.speaker_tolerance", 0.25)
	v.SetDefault("output.dir", "outputs")
	v.SetDefault("output.formats", []string{"txt", "json", "srt", "rttm"})
	v.SetDefault("output.rttm_from_segments", false)
	v.SetDefault("output.speaker_names", "")
}
