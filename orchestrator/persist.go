package orchestrator

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/openscribe/diarise-pipeline/merge"
	"github.com/openscribe/diarise-pipeline/render"
)

func mkSessionDir(outputsRoot string) (string, string, error) {
	ts := time.Now().Format("20060102-150405")
	sid := "session_" + ts
	dir := filepath.Join(outputsRoot, sid)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", err
	}
	return sid, dir, nil
}

// writeOutputs renders the merged result into dir, one file per requested
// format, and returns format -> path. fileID names the recording in RTTM
// lines.
func writeOutputs(dir, fileID string, formats []string, res *merge.Result, labels render.Labels, rttmFromSegments bool) (map[string]string, error) {
	outputs := make(map[string]string, len(formats))
	for _, format := range formats {
		path := filepath.Join(dir, "transcript."+format)
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		switch format {
		case "txt":
			err = render.Text(f, res, labels)
		case "json":
			err = render.JSON(f, res)
		case "srt":
			err = render.SRT(f, res, labels)
		case "rttm":
			err = render.RTTM(f, res, fileID, rttmFromSegments)
		default:
			err = fmt.Errorf("unknown output format %q", format)
		}
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		outputs[format] = path
	}
	return outputs, nil
}
