// Package orchestrator sequences one recording through audio normalisation,
// the external ASR and diarisation services, the merge and the renderers.
package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/openscribe/diarise-pipeline/clients"
	"github.com/openscribe/diarise-pipeline/config"
	"github.com/openscribe/diarise-pipeline/media"
	"github.com/openscribe/diarise-pipeline/merge"
)

type Pipeline struct {
	cfg  *config.Root
	http *clients.HTTP
	log  *logrus.Logger
}

func NewPipeline(cfg *config.Root, log *logrus.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, http: clients.NewHTTP(), log: log}
}

// Run processes one recording end to end and writes every configured output
// format into a fresh session directory.
func (p *Pipeline) Run(ctx context.Context, audioPath string) (*Report, error) {
	p.log.WithField("input", audioPath).Info("normalising audio")
	wavPath, err := media.ExtractAudio(ctx, audioPath, "", p.cfg.Audio.SampleRate, p.cfg.Audio.Channels)
	if err != nil {
		return nil, err
	}
	defer os.Remove(wavPath)

	p.log.WithField("url", p.cfg.Services.ASR.URL).Info("transcribing")
	asr, err := p.http.Transcribe(ctx, p.cfg.Services.ASR.URL, wavPath)
	if err != nil {
		return nil, err
	}

	p.log.WithField("url", p.cfg.Services.Diarization.URL).Info("diarising")
	diar, err := p.http.Diarize(ctx, p.cfg.Services.Diarization.URL, wavPath)
	if err != nil {
		return nil, err
	}

	words := wordsFromASR(asr)
	segments := segmentsFromDiarization(diar)
	p.log.WithFields(logrus.Fields{
		"words":    len(words),
		"segments": len(segments),
	}).Info("merging")

	res, err := merge.Merge(words, segments, merge.Options{
		NumSpeakers:      p.cfg.Merge.NumSpeakers,
		GapThreshold:     p.cfg.Merge.GapThreshold,
		SpeakerTolerance: p.cfg.Merge.SpeakerTolerance,
		Logger:           p.log,
	})
	if err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}

	labels, err := config.LoadSpeakerNames(p.cfg.Output.SpeakerNames)
	if err != nil {
		return nil, err
	}

	sid, dir, err := mkSessionDir(p.cfg.Output.Dir)
	if err != nil {
		return nil, err
	}

	fileID := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	outputs, err := writeOutputs(dir, fileID, p.cfg.Output.Formats, res, labels, p.cfg.Output.RTTMFromSegments)
	if err != nil {
		return nil, err
	}

	p.log.WithFields(logrus.Fields{
		"session": sid,
		"turns":   len(res.Turns),
	}).Info("done")

	return &Report{
		SessionID: sid,
		AudioPath: audioPath,
		Words:     len(res.Words),
		Segments:  len(res.Segments),
		Turns:     len(res.Turns),
		Outputs:   outputs,
	}, nil
}
