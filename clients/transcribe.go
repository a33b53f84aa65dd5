package clients

import "context"

type TransWord struct {
	Text       string  `json:"text"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Confidence float64 `json:"confidence,omitempty"`
}

type TranscribeResp struct {
	Text     string      `json:"text"`
	Words    []TransWord `json:"words"`
	Language string      `json:"language,omitempty"`
}

// Transcribe sends the WAV to the ASR service and returns the transcript
// with word-level timestamps.
func (h *HTTP) Transcribe(ctx context.Context, url, wavPath string) (*TranscribeResp, error) {
	var out TranscribeResp
	if err := h.postWAV(ctx, url+"/transcribe", wavPath, "asr", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
