package orchestrator

import (
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openscribe/diarise-pipeline/config"
)

// writeWAV writes a short silent 16-bit mono PCM file ffmpeg can read.
func writeWAV(t *testing.T, path string) {
	t.Helper()
	const (
		sampleRate = 8000
		samples    = 800
		dataSize   = samples * 2
	)
	var b bytes.Buffer
	b.WriteString("RIFF")
	binary.Write(&b, binary.LittleEndian, uint32(36+dataSize))
	b.WriteString("WAVEfmt ")
	binary.Write(&b, binary.LittleEndian, uint32(16))
	binary.Write(&b, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&b, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&b, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&b, binary.LittleEndian, uint32(sampleRate*2))
	binary.Write(&b, binary.LittleEndian, uint16(2))
	binary.Write(&b, binary.LittleEndian, uint16(16))
	b.WriteString("data")
	binary.Write(&b, binary.LittleEndian, uint32(dataSize))
	b.Write(make([]byte, dataSize))
	require.NoError(t, os.WriteFile(path, b.Bytes(), 0o644))
}

func modelServer(t *testing.T, path, payload string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, path, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPipelineRunRemovesTempAudio(t *testing.T) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not installed")
	}

	input := filepath.Join(t.TempDir(), "meeting.wav")
	writeWAV(t, input)

	asr := modelServer(t, "/transcribe",
		`{"text": "hello world", "words": [
			{"text": "hello", "start": 0.0, "end": 0.5},
			{"text": "world", "start": 0.6, "end": 1.0}
		]}`)
	diar := modelServer(t, "/diarize",
		`{"segments": [{"speaker": "SPEAKER_00", "start": 0.0, "end": 1.0}]}`)

	cfg := &config.Root{}
	cfg.Audio.SampleRate = 16000
	cfg.Audio.Channels = 1
	cfg.Services.ASR.URL = asr.URL
	cfg.Services.Diarization.URL = diar.URL
	cfg.Merge.GapThreshold = 0.8
	cfg.Merge.SpeakerTolerance = 0.25
	cfg.Output.Dir = t.TempDir()
	cfg.Output.Formats = []string{"txt", "rttm"}

	log := logrus.New()
	log.SetOutput(io.Discard)

	report, err := NewPipeline(cfg, log).Run(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Words)
	assert.Equal(t, 1, report.Turns)
	require.Len(t, report.Outputs, 2)

	txt, err := os.ReadFile(report.Outputs["txt"])
	require.NoError(t, err)
	assert.Equal(t, "[00:00.00 - 00:01.00] SPEAKER_00: hello world\n", string(txt))

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	converted := filepath.Join(os.TempDir(), base+"_16000hz.wav")
	_, err = os.Stat(converted)
	assert.True(t, os.IsNotExist(err), "normalised temp WAV must be removed after the run")
}
