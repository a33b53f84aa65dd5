// Package media normalises input recordings into the WAV layout the model
// services expect, by shelling out to ffmpeg.
package media

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// ExtractAudio converts any ffmpeg-readable input into a PCM WAV with the
// given sample rate and channel count, writing into tmpDir (system temp when
// empty). Returns the path of the converted file. Inputs that already are
// WAV still pass through ffmpeg so the rate and channels are guaranteed.
func ExtractAudio(ctx context.Context, inPath, tmpDir string, sampleRate, channels int) (string, error) {
	if tmpDir == "" {
		tmpDir = os.TempDir()
	}
	base := strings.TrimSuffix(filepath.Base(inPath), filepath.Ext(inPath))
	out := filepath.Join(tmpDir, fmt.Sprintf("%s_%dhz.wav", base, sampleRate))

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-y", "-i", inPath,
		"-ac", strconv.Itoa(channels),
		"-ar", strconv.Itoa(sampleRate),
		"-f", "wav",
		out,
	)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("ffmpeg %s: %w: %s", inPath, err, tail(stderr.String(), 512))
	}
	return out, nil
}

func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}
