package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/openscribe/diarise-pipeline/config"
	"github.com/openscribe/diarise-pipeline/merge"
	"github.com/openscribe/diarise-pipeline/orchestrator"
	"github.com/openscribe/diarise-pipeline/render"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:          "diarise",
		Short:        "Speaker-attributed transcription pipeline",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config.yaml")

	root.AddCommand(newRunCmd(&cfgPath))
	root.AddCommand(newMergeCmd())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})
	return root
}

func newRunCmd(cfgPath *string) *cobra.Command {
	var (
		numSpeakers int
		gap         float64
		tolerance   float64
		formats     []string
		outDir      string
	)

	cmd := &cobra.Command{
		Use:   "run <audio-file>",
		Short: "Transcribe, diarise and merge one recording",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("num-speakers") {
				cfg.Merge.NumSpeakers = numSpeakers
			}
			if cmd.Flags().Changed("gap-threshold") {
				cfg.Merge.GapThreshold = gap
			}
			if cmd.Flags().Changed("speaker-tolerance") {
				cfg.Merge.SpeakerTolerance = tolerance
			}
			if cmd.Flags().Changed("formats") {
				cfg.Output.Formats = formats
			}
			if cmd.Flags().Changed("out") {
				cfg.Output.Dir = outDir
			}

			log := newLogger(cfg.Pipeline.LogLevel)
			p := orchestrator.NewPipeline(cfg, log)
			report, err := p.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}

	cmd.Flags().IntVar(&numSpeakers, "num-speakers", 0, "keep only the N most active speakers (0 = all)")
	cmd.Flags().Float64Var(&gap, "gap-threshold", merge.DefaultGapThreshold, "silence gap in seconds that splits a turn")
	cmd.Flags().Float64Var(&tolerance, "speaker-tolerance", merge.DefaultSpeakerTolerance, "max distance in seconds for boundary word attribution")
	cmd.Flags().StringSliceVar(&formats, "formats", nil, "output formats (txt,json,srt,rttm)")
	cmd.Flags().StringVar(&outDir, "out", "", "output directory")
	return cmd
}

func newMergeCmd() *cobra.Command {
	var (
		wordsPath   string
		segsPath    string
		format      string
		fileID      string
		numSpeakers int
		gap         float64
		tolerance   float64
		namesPath   string
	)

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge pre-computed ASR words and diarisation segments",
		Long:  "Offline merge: reads word-level ASR output and diarisation segments from JSON files and writes the merged transcript to stdout.",
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := readWordsFile(wordsPath)
			if err != nil {
				return err
			}
			segments, err := readSegmentsFile(segsPath)
			if err != nil {
				return err
			}
			labels, err := config.LoadSpeakerNames(namesPath)
			if err != nil {
				return err
			}

			res, err := merge.Merge(words, segments, merge.Options{
				NumSpeakers:      numSpeakers,
				GapThreshold:     gap,
				SpeakerTolerance: tolerance,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "txt":
				return render.Text(out, res, labels)
			case "json":
				return render.JSON(out, res)
			case "srt":
				return render.SRT(out, res, labels)
			case "rttm":
				return render.RTTM(out, res, fileID, false)
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
	}

	cmd.Flags().StringVar(&wordsPath, "words", "", "ASR words JSON file (required)")
	cmd.Flags().StringVar(&segsPath, "segments", "", "diarisation segments JSON file (required)")
	cmd.Flags().StringVar(&format, "format", "txt", "output format: txt|json|srt|rttm")
	cmd.Flags().StringVar(&fileID, "file-id", "recording", "file id written into RTTM lines")
	cmd.Flags().IntVar(&numSpeakers, "num-speakers", 0, "keep only the N most active speakers (0 = all)")
	cmd.Flags().Float64Var(&gap, "gap-threshold", merge.DefaultGapThreshold, "silence gap in seconds that splits a turn")
	cmd.Flags().Float64Var(&tolerance, "speaker-tolerance", merge.DefaultSpeakerTolerance, "max distance in seconds for boundary word attribution")
	cmd.Flags().StringVar(&namesPath, "speaker-names", "", "optional YAML map of speaker ids to display names")
	cmd.MarkFlagRequired("words")
	cmd.MarkFlagRequired("segments")
	return cmd
}

// readWordsFile accepts either the ASR service payload ({"words": [...]})
// or a bare word array.
func readWordsFile(path string) ([]merge.Word, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc struct {
		Words []merge.Word `json:"words"`
	}
	if err := json.Unmarshal(data, &doc); err == nil && doc.Words != nil {
		return doc.Words, nil
	}
	var words []merge.Word
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("words %s: %w", path, err)
	}
	return words, nil
}

// readSegmentsFile accepts either the diarisation service payload
// ({"segments": [...]}) or a bare segment array.
func readSegmentsFile(path string) ([]merge.Segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc struct {
		Segments []merge.Segment `json:"segments"`
	}
	if err := json.Unmarshal(data, &doc); err == nil && doc.Segments != nil {
		return doc.Segments, nil
	}
	var segments []merge.Segment
	if err := json.Unmarshal(data, &segments); err != nil {
		return nil, fmt.Errorf("segments %s: %w", path, err)
	}
	return segments, nil
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}
