package clients

import (
	"context"
	"fmt"
)

type DiarSegment struct {
	Speaker string  `json:"speaker"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
}

type DiarizeResp struct {
	Segments []DiarSegment `json:"segments"`
	Error    string        `json:"error,omitempty"`
}

// Diarize sends the WAV to the diarisation service and returns the raw
// speaker segments. A payload-level error field is surfaced as an error.
func (h *HTTP) Diarize(ctx context.Context, url, wavPath string) (*DiarizeResp, error) {
	var out DiarizeResp
	if err := h.postWAV(ctx, url+"/diarize", wavPath, "diarization", &out); err != nil {
		return nil, err
	}
	if out.Error != "" {
		return nil, fmt.Errorf("diarization: %s", out.Error)
	}
	return &out, nil
}
